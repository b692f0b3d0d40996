// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

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

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
	debug        = flag.Bool("vkdbg", false, "Load Vulkan validation layers")
)

const fieldOfView = 45

func newWindow(cfg core.Configuration) (*sdl.Window, error) {
	return sdl.CreateWindow(cfg.Window.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Renderer.ScreenWidth),
		int32(cfg.Renderer.ScreenHeight),
		sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
}

func drawableSize(window *sdl.Window) gfx.WindowSizer {
	return gfx.WindowSizeFunc(func() (uint32, uint32) {
		w, h := window.VulkanGetDrawableSize()
		return uint32(w), uint32(h)
	})
}

func logViewState(sc *vkr.Swapchain) {
	extent := sc.Extent()
	viewport := vkr.Viewport(extent)
	scissor := vkr.Scissor(extent)
	log.WithFields(log.Fields{
		"state":       sc.State(),
		"images":      len(sc.Images()),
		"viewport":    []float32{viewport.Width, viewport.Height},
		"scissor":     []uint32{scissor.Extent.Width, scissor.Extent.Height},
		"projection":  vkr.Projection(extent, fieldOfView, 0.1, 100),
		"presentMode": sc.PresentMode(),
	}).Debug("presentation state")
}

func main() {
	flag.Parse()

	configuration, err := core.LoadConfiguration()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	log.SetLevel(configuration.LogLevel)

	// Every resource is released by the deferred calls in run
	// before the process exits.
	if err := run(configuration); err != nil {
		log.WithError(err).Fatal("koru exited")
	}
}

func run(configuration core.Configuration) error {
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return errors.Wrap(err, "creating cpu profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "starting cpu profile")
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			return errors.Wrap(err, "creating trace")
		}
		defer f.Close()
		if err := trace.Start(f); err != nil {
			return errors.Wrap(err, "starting trace")
		}
		defer trace.Stop()
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "sdl.Init()")
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return errors.Wrap(err, "sdl.VulkanLoadLibrary()")
	}
	defer sdl.VulkanUnloadLibrary()

	sdlWindow, err := newWindow(configuration)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer sdlWindow.Destroy()

	instanceCfg := configuration.Instance
	instanceCfg.DebugMode = instanceCfg.DebugMode || *debug
	instanceCfg.Extensions = sdlWindow.VulkanGetInstanceExtensions()

	vkInstance, err := core.NewVulkanInstance(core.DefaultVulkanApplicationInfo, sdl.VulkanGetVkGetInstanceProcAddr(), instanceCfg)
	if err != nil {
		return errors.Wrap(err, "creating vulkan instance")
	}
	defer vkInstance.Destroy()

	surface, err := sdlWindow.VulkanCreateSurface(vkInstance.Instance())
	if err != nil {
		return errors.Wrap(err, "creating window surface")
	}
	vkInstance.SetSurface(surface)

	physicalDevice := vkInstance.AvailableDevices()[0]
	vkDevice, err := core.NewVulkanDevice(physicalDevice, vkInstance.Surface(), configuration.Renderer)
	if err != nil {
		return errors.Wrap(err, "creating logical device")
	}
	defer vkDevice.Destroy()

	window := drawableSize(sdlWindow)
	presentation, err := vkr.NewPresentation(vkr.NewVulkanDriver(), vkDevice.LogicalDevice(), physicalDevice, vkInstance.Surface(), window)
	if err != nil {
		return errors.Wrap(err, "creating presentation")
	}
	defer presentation.Release()
	logViewState(presentation.Swapchain())

	timeService := core.NewTime(configuration.Time)
	defer timeService.Stop()

	// Framebuffers are rebuilt once per tick however many resize events arrived.
	var resized bool

	for {
		<-timeService.EventTicker().C
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch et := event.(type) {
			case *sdl.KeyboardEvent:
				if et.Keysym.Sym == sdl.K_ESCAPE {
					log.Info("event loop exited")
					return nil
				}
			case *sdl.WindowEvent:
				if et.Event == sdl.WINDOWEVENT_RESIZED || et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					resized = true
				}
			case *sdl.QuitEvent:
				log.Info("event loop exited")
				return nil
			}
		}

		if !resized {
			continue
		}
		resized = false
		if err := resize(presentation, window); err != nil {
			return errors.Wrap(err, "recreating swapchain")
		}
	}
}

func resize(presentation *vkr.Presentation, window gfx.WindowSizer) error {
	if w, h := window.DrawableSize(); w == 0 || h == 0 {
		log.Debug("window minimized, keeping swapchain")
		return nil
	}
	if err := presentation.Resize(); err != nil {
		return err
	}
	logViewState(presentation.Swapchain())
	return nil
}
