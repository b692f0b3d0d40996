// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"flag"
	"os"
	"runtime"

	"github.com/devblok/koru-swapchain/core"
	"github.com/devblok/koru-swapchain/gfx"
	"github.com/devblok/koru-swapchain/gfx/vkr"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

var (
	debug  = flag.Bool("vkdbg", false, "Load Vulkan validation layers")
	indent = flag.Bool("indent", true, "Indent the JSON output")
)

// deviceReport is what korucli prints for every physical device.
type deviceReport struct {
	Device       core.PhysicalDeviceInfo
	Capabilities *vkr.Capabilities `json:",omitempty"`
	Policy       *vkr.Policy       `json:",omitempty"`
	Error        string            `json:",omitempty"`
}

func main() {
	flag.Parse()

	configuration, err := core.LoadConfiguration()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	log.SetLevel(configuration.LogLevel)
	log.SetOutput(os.Stderr)

	if err := run(configuration); err != nil {
		log.WithError(err).Fatal("korucli exited")
	}
}

func run(configuration core.Configuration) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "sdl.Init()")
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return errors.Wrap(err, "sdl.VulkanLoadLibrary()")
	}
	defer sdl.VulkanUnloadLibrary()

	window, err := sdl.CreateWindow(configuration.Window.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(configuration.Renderer.ScreenWidth),
		int32(configuration.Renderer.ScreenHeight),
		sdl.WINDOW_VULKAN|sdl.WINDOW_HIDDEN)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer window.Destroy()

	cfg := core.InstanceConfiguration{
		DebugMode:  *debug,
		Extensions: window.VulkanGetInstanceExtensions(),
		Layers:     []string{},
	}
	coreInstance, err := core.NewVulkanInstance(core.DefaultVulkanApplicationInfo, sdl.VulkanGetVkGetInstanceProcAddr(), cfg)
	if err != nil {
		return errors.Wrap(err, "creating vulkan instance")
	}
	defer coreInstance.Destroy()

	surface, err := window.VulkanCreateSurface(coreInstance.Instance())
	if err != nil {
		return errors.Wrap(err, "creating window surface")
	}
	coreInstance.SetSurface(surface)

	drv := vkr.NewVulkanDriver()
	size := gfx.FixedSize{
		Width:  configuration.Renderer.ScreenWidth,
		Height: configuration.Renderer.ScreenHeight,
	}

	infos := coreInstance.PhysicalDevicesInfo()
	reports := make([]deviceReport, len(infos))
	for i, physicalDevice := range coreInstance.AvailableDevices() {
		reports[i].Device = infos[i]

		caps, err := vkr.Probe(drv, physicalDevice, coreInstance.Surface())
		if err != nil {
			log.WithError(err).WithField("device", infos[i].Name).Warn("probing surface")
			reports[i].Error = err.Error()
			continue
		}
		policy := vkr.SelectPolicy(caps, size)
		reports[i].Capabilities = &caps
		reports[i].Policy = &policy
	}

	encoder := json.NewEncoder(os.Stdout)
	if *indent {
		encoder.SetIndent("", "  ")
	}
	return errors.Wrap(encoder.Encode(reports), "encoding report")
}
