// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"github.com/devblok/koru-swapchain/gfx"
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Chain owns a swapchain and the presentable images that belong to it.
// The images are released together with the swapchain, never one by one.
type Chain struct {
	swapchain   vk.Swapchain
	images      []vk.Image
	format      vk.SurfaceFormat
	presentMode vk.PresentMode
	extent      vk.Extent2D
}

// NewChain probes the surface, selects the presentation policy and
// creates a swapchain with it.
func NewChain(drv Driver, device vk.Device, physicalDevice vk.PhysicalDevice, surface vk.Surface, window gfx.WindowSizer) (*Chain, error) {
	caps, err := Probe(drv, physicalDevice, surface)
	if err != nil {
		return nil, errors.Wrap(err, "probing surface")
	}
	if len(caps.Formats) == 0 {
		return nil, ErrNoSurfaceFormats
	}
	return createChain(drv, device, surface, caps, SelectPolicy(caps, window))
}

func createChain(drv Driver, device vk.Device, surface vk.Surface, caps Capabilities, policy Policy) (*Chain, error) {
	scci := vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          surface,
		MinImageCount:    policy.ImageCount,
		ImageFormat:      policy.Format.Format,
		ImageColorSpace:  policy.Format.ColorSpace,
		ImageExtent:      policy.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		PresentMode:      policy.PresentMode,
		Clipped:          vk.True,
		OldSwapchain:     nil,
	}

	swapchain, err := drv.CreateSwapchain(device, &scci)
	if err != nil {
		return nil, err
	}

	// The driver decides the final number of images,
	// it may differ from the requested count.
	images, err := drv.SwapchainImages(device, swapchain)
	if err != nil {
		drv.DestroySwapchain(device, swapchain)
		return nil, err
	}
	if len(images) == 0 {
		drv.DestroySwapchain(device, swapchain)
		return nil, ErrNoImages
	}

	log.WithFields(log.Fields{
		"requested":   policy.ImageCount,
		"images":      len(images),
		"format":      policy.Format.Format,
		"colorSpace":  policy.Format.ColorSpace,
		"presentMode": policy.PresentMode,
		"width":       policy.Extent.Width,
		"height":      policy.Extent.Height,
	}).Info("swapchain created")

	return &Chain{
		swapchain:   swapchain,
		images:      images,
		format:      policy.Format,
		presentMode: policy.PresentMode,
		extent:      policy.Extent,
	}, nil
}

// Handle returns the swapchain handle for acquire and present calls.
func (c *Chain) Handle() vk.Swapchain {
	return c.swapchain
}

// Images returns the presentable images in swapchain index order.
func (c *Chain) Images() []vk.Image {
	return c.images
}

// Format returns the format and color space of the images.
func (c *Chain) Format() vk.SurfaceFormat {
	return c.format
}

// PresentMode returns the mode images are presented with.
func (c *Chain) PresentMode() vk.PresentMode {
	return c.presentMode
}

// Extent returns the size of the images.
func (c *Chain) Extent() vk.Extent2D {
	return c.extent
}

// destroy releases the swapchain and with it every image.
// The device must be idle.
func (c *Chain) destroy(drv Driver, device vk.Device) {
	if c.swapchain == nil {
		return
	}
	drv.DestroySwapchain(device, c.swapchain)
	c.swapchain = nil
	c.images = nil
}
