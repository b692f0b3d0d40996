// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"math"

	"github.com/devblok/koru-swapchain/gfx"
	vk "github.com/devblok/vulkan"
)

const undefinedExtentDimension = math.MaxUint32

// UndefinedExtent is reported as the current extent of a surface
// whose size is set by the swapchain targeting it.
func UndefinedExtent() vk.Extent2D {
	return vk.Extent2D{Width: undefinedExtentDimension, Height: undefinedExtentDimension}
}

// PreferredSurfaceFormat is chosen whenever the surface supports it.
func PreferredSurfaceFormat() vk.SurfaceFormat {
	return vk.SurfaceFormat{
		Format:     vk.FormatB8g8r8a8Unorm,
		ColorSpace: vk.ColorSpaceSrgbNonlinear,
	}
}

// Policy is the set of presentation parameters chosen for a surface.
type Policy struct {
	Format      vk.SurfaceFormat
	PresentMode vk.PresentMode
	Extent      vk.Extent2D
	ImageCount  uint32
}

// SelectPolicy chooses every presentation parameter from the capabilities.
// The window is only asked for its size when the surface leaves
// the extent up to the swapchain.
func SelectPolicy(caps Capabilities, window gfx.WindowSizer) Policy {
	return Policy{
		Format:      ChooseSurfaceFormat(caps.Formats),
		PresentMode: ChoosePresentMode(caps.PresentModes),
		Extent:      ChooseExtent(caps, window),
		ImageCount:  ChooseImageCount(caps),
	}
}

// ChooseSurfaceFormat returns the preferred format when the surface has no
// preference or supports it, otherwise the first supported format.
func ChooseSurfaceFormat(formats []vk.SurfaceFormat) vk.SurfaceFormat {
	if len(formats) == 0 {
		return PreferredSurfaceFormat()
	}
	if len(formats) == 1 && formats[0].Format == vk.FormatUndefined {
		return PreferredSurfaceFormat()
	}

	preferred := PreferredSurfaceFormat()
	for _, f := range formats {
		if f.Format == preferred.Format && f.ColorSpace == preferred.ColorSpace {
			return f
		}
	}
	return formats[0]
}

// ChoosePresentMode prefers mailbox, then immediate, then fifo which
// every surface supports. Immediate is only remembered while scanning
// so that a later mailbox entry still wins.
func ChoosePresentMode(modes []vk.PresentMode) vk.PresentMode {
	bestMode := vk.PresentModeFifo
	for _, mode := range modes {
		if mode == vk.PresentModeMailbox {
			return mode
		}
		if mode == vk.PresentModeImmediate {
			bestMode = mode
		}
	}
	return bestMode
}

// ChooseExtent uses the current extent of the surface when it is defined,
// otherwise the window size clamped into the supported extent range.
func ChooseExtent(caps Capabilities, window gfx.WindowSizer) vk.Extent2D {
	if caps.CurrentExtent.Width != undefinedExtentDimension {
		return vk.Extent2D{
			Width:  caps.CurrentExtent.Width,
			Height: caps.CurrentExtent.Height,
		}
	}

	width, height := window.DrawableSize()
	return vk.Extent2D{
		Width:  clamp(width, caps.MinExtent.Width, caps.MaxExtent.Width),
		Height: clamp(height, caps.MinExtent.Height, caps.MaxExtent.Height),
	}
}

// ChooseImageCount returns one image more than the minimum, limited by
// the maximum when the surface has one.
func ChooseImageCount(caps Capabilities) uint32 {
	count := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && count > caps.MaxImageCount {
		count = caps.MaxImageCount
	}
	return count
}

func clamp(v, min, max uint32) uint32 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
