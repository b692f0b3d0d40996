// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packr"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Environment keys read by LoadConfiguration
const (
	KeyWindowTitle    = "KORU_WINDOW_TITLE"
	KeyScreenWidth    = "KORU_SCREEN_WIDTH"
	KeyScreenHeight   = "KORU_SCREEN_HEIGHT"
	KeyFramesPerSec   = "KORU_FPS"
	KeyEventPollDelay = "KORU_EVENT_POLL_DELAY"
	KeyDebug          = "KORU_DEBUG"
	KeyLogLevel       = "KORU_LOG_LEVEL"
)

const defaultsFile = "koru.env"

// Defaults holds the embedded default configuration
var Defaults = packr.NewBox("./defaults")

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Window   WindowConfiguration
	Renderer RendererConfiguration
	Instance InstanceConfiguration
	LogLevel log.Level
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between window event polls in milliseconds
	EventPollDelay int
}

// WindowConfiguration is used to configure the window the surface belongs to
type WindowConfiguration struct {
	Title string
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	DeviceExtensions []string

	ScreenWidth  uint32
	ScreenHeight uint32
}

// InstanceConfiguration is used to configure the Vulkan instance
type InstanceConfiguration struct {
	DebugMode  bool
	Extensions []string
	Layers     []string
}

// LoadConfiguration reads the embedded defaults and overrides
// them with values found in the environment.
func LoadConfiguration() (Configuration, error) {
	raw, err := Defaults.FindString(defaultsFile)
	if err != nil {
		return Configuration{}, errors.Wrapf(err, "reading %s", defaultsFile)
	}
	defaults, err := godotenv.Parse(strings.NewReader(raw))
	if err != nil {
		return Configuration{}, errors.Wrapf(err, "parsing %s", defaultsFile)
	}
	return ParseConfiguration(func(key string) string {
		return envy.Get(key, defaults[key])
	})
}

// ParseConfiguration builds a Configuration from the values lookup returns.
func ParseConfiguration(lookup func(key string) string) (Configuration, error) {
	var (
		cfg Configuration
		err error
	)

	cfg.Window.Title = lookup(KeyWindowTitle)

	if cfg.Renderer.ScreenWidth, err = parseUint32(lookup, KeyScreenWidth); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.ScreenHeight, err = parseUint32(lookup, KeyScreenHeight); err != nil {
		return Configuration{}, err
	}
	if cfg.Time.FramesPerSecond, err = parseInt(lookup, KeyFramesPerSec); err != nil {
		return Configuration{}, err
	}
	if cfg.Time.EventPollDelay, err = parseInt(lookup, KeyEventPollDelay); err != nil {
		return Configuration{}, err
	}
	if cfg.Instance.DebugMode, err = strconv.ParseBool(lookup(KeyDebug)); err != nil {
		return Configuration{}, errors.Wrap(err, KeyDebug)
	}
	if cfg.LogLevel, err = log.ParseLevel(lookup(KeyLogLevel)); err != nil {
		return Configuration{}, errors.Wrap(err, KeyLogLevel)
	}

	if cfg.Renderer.ScreenWidth == 0 || cfg.Renderer.ScreenHeight == 0 {
		return Configuration{}, errors.Errorf("screen size %dx%d has a zero dimension",
			cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
	}
	if cfg.Time.FramesPerSecond < 0 || cfg.Time.EventPollDelay < 0 {
		return Configuration{}, errors.New("time configuration must not be negative")
	}
	return cfg, nil
}

func parseUint32(lookup func(string) string, key string) (uint32, error) {
	v, err := strconv.ParseUint(lookup(key), 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	return uint32(v), nil
}

func parseInt(lookup func(string) string, key string) (int, error) {
	v, err := strconv.Atoi(lookup(key))
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	return v, nil
}
