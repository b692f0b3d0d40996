// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/devblok/vulkan"
)

// Capabilities is what a surface supports on a physical device at the time
// it was probed. It is never modified after Probe returns.
type Capabilities struct {
	MinImageCount uint32
	// MaxImageCount of zero means there is no upper limit.
	MaxImageCount uint32

	// CurrentExtent is UndefinedExtent() when the surface size
	// is determined by the swapchain.
	CurrentExtent vk.Extent2D
	MinExtent     vk.Extent2D
	MaxExtent     vk.Extent2D

	SupportedTransforms     vk.SurfaceTransformFlags
	CurrentTransform        vk.SurfaceTransformFlagBits
	SupportedCompositeAlpha vk.CompositeAlphaFlags

	// Formats and PresentModes are in the order the driver reports them
	// and may be empty.
	Formats      []vk.SurfaceFormat
	PresentModes []vk.PresentMode
}

// Probe queries the surface capabilities, formats and present modes the
// physical device supports for the surface. Empty format or present mode
// lists are not an error.
func Probe(drv Driver, physicalDevice vk.PhysicalDevice, surface vk.Surface) (Capabilities, error) {
	surfaceCapabilities, err := drv.SurfaceCapabilities(physicalDevice, surface)
	if err != nil {
		return Capabilities{}, err
	}

	formats, err := drv.SurfaceFormats(physicalDevice, surface)
	if err != nil {
		return Capabilities{}, err
	}

	presentModes, err := drv.SurfacePresentModes(physicalDevice, surface)
	if err != nil {
		return Capabilities{}, err
	}

	return Capabilities{
		MinImageCount:           surfaceCapabilities.MinImageCount,
		MaxImageCount:           surfaceCapabilities.MaxImageCount,
		CurrentExtent:           extent(surfaceCapabilities.CurrentExtent),
		MinExtent:               extent(surfaceCapabilities.MinImageExtent),
		MaxExtent:               extent(surfaceCapabilities.MaxImageExtent),
		SupportedTransforms:     surfaceCapabilities.SupportedTransforms,
		CurrentTransform:        surfaceCapabilities.CurrentTransform,
		SupportedCompositeAlpha: surfaceCapabilities.SupportedCompositeAlpha,
		Formats:                 surfaceFormats(formats),
		PresentModes:            append([]vk.PresentMode(nil), presentModes...),
	}, nil
}

// extent copies only the dimensions, dropping any reference to C memory.
func extent(e vk.Extent2D) vk.Extent2D {
	return vk.Extent2D{Width: e.Width, Height: e.Height}
}

func surfaceFormats(formats []vk.SurfaceFormat) []vk.SurfaceFormat {
	if len(formats) == 0 {
		return nil
	}
	copied := make([]vk.SurfaceFormat, len(formats))
	for i, f := range formats {
		copied[i] = vk.SurfaceFormat{Format: f.Format, ColorSpace: f.ColorSpace}
	}
	return copied
}
