// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
)

// Driver is the boundary between the presentation chain and the Vulkan API.
// Every query returns complete slices, the count-then-fill protocol of the
// API stays inside the implementation. Every non-success result is returned
// as an error.
type Driver interface {
	SurfaceCapabilities(physicalDevice vk.PhysicalDevice, surface vk.Surface) (vk.SurfaceCapabilities, error)
	SurfaceFormats(physicalDevice vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error)
	SurfacePresentModes(physicalDevice vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error)

	CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo) (vk.Swapchain, error)
	SwapchainImages(device vk.Device, swapchain vk.Swapchain) ([]vk.Image, error)
	DestroySwapchain(device vk.Device, swapchain vk.Swapchain)

	CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo) (vk.ImageView, error)
	DestroyImageView(device vk.Device, view vk.ImageView)

	CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo) (vk.Framebuffer, error)
	DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer)

	CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo) (vk.RenderPass, error)
	DestroyRenderPass(device vk.Device, renderPass vk.RenderPass)

	// DeviceWaitIdle blocks until all work submitted to the device completes.
	DeviceWaitIdle(device vk.Device) error
}

// VulkanDriver implements Driver on top of the loaded Vulkan library.
type VulkanDriver struct{}

// NewVulkanDriver returns a Driver calling into Vulkan. The library
// must have been initialised with vk.Init before any call is made.
func NewVulkanDriver() *VulkanDriver {
	return &VulkanDriver{}
}

// SurfaceCapabilities implements Driver.
func (VulkanDriver) SurfaceCapabilities(physicalDevice vk.PhysicalDevice, surface vk.Surface) (vk.SurfaceCapabilities, error) {
	var capabilities vk.SurfaceCapabilities
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceCapabilities(physicalDevice, surface, &capabilities)); err != nil {
		return vk.SurfaceCapabilities{}, errors.Wrap(err, "vk.GetPhysicalDeviceSurfaceCapabilities()")
	}
	capabilities.Deref()
	capabilities.CurrentExtent.Deref()
	capabilities.MinImageExtent.Deref()
	capabilities.MaxImageExtent.Deref()
	return capabilities, nil
}

// SurfaceFormats implements Driver.
func (VulkanDriver) SurfaceFormats(physicalDevice vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error) {
	var formatCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(physicalDevice, surface, &formatCount, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.GetPhysicalDeviceSurfaceFormats(num)")
	}
	if formatCount == 0 {
		return nil, nil
	}

	formats := make([]vk.SurfaceFormat, formatCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(physicalDevice, surface, &formatCount, formats)); err != nil {
		return nil, errors.Wrap(err, "vk.GetPhysicalDeviceSurfaceFormats(formats)")
	}
	formats = formats[:formatCount]
	for i := range formats {
		formats[i].Deref()
	}
	return formats, nil
}

// SurfacePresentModes implements Driver.
func (VulkanDriver) SurfacePresentModes(physicalDevice vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error) {
	var modeCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(physicalDevice, surface, &modeCount, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.GetPhysicalDeviceSurfacePresentModes(num)")
	}
	if modeCount == 0 {
		return nil, nil
	}

	modes := make([]vk.PresentMode, modeCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(physicalDevice, surface, &modeCount, modes)); err != nil {
		return nil, errors.Wrap(err, "vk.GetPhysicalDeviceSurfacePresentModes(modes)")
	}
	return modes[:modeCount], nil
}

// CreateSwapchain implements Driver.
func (VulkanDriver) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo) (vk.Swapchain, error) {
	var swapchain vk.Swapchain
	if err := vk.Error(vk.CreateSwapchain(device, info, nil, &swapchain)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateSwapchain()")
	}
	return swapchain, nil
}

// SwapchainImages implements Driver.
func (VulkanDriver) SwapchainImages(device vk.Device, swapchain vk.Swapchain) ([]vk.Image, error) {
	var numImages uint32
	if err := vk.Error(vk.GetSwapchainImages(device, swapchain, &numImages, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.GetSwapchainImages(num)")
	}

	images := make([]vk.Image, numImages)
	if err := vk.Error(vk.GetSwapchainImages(device, swapchain, &numImages, images)); err != nil {
		return nil, errors.Wrap(err, "vk.GetSwapchainImages(images)")
	}
	return images[:numImages], nil
}

// DestroySwapchain implements Driver.
func (VulkanDriver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	vk.DestroySwapchain(device, swapchain, nil)
}

// CreateImageView implements Driver.
func (VulkanDriver) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo) (vk.ImageView, error) {
	var view vk.ImageView
	if err := vk.Error(vk.CreateImageView(device, info, nil, &view)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateImageView()")
	}
	return view, nil
}

// DestroyImageView implements Driver.
func (VulkanDriver) DestroyImageView(device vk.Device, view vk.ImageView) {
	vk.DestroyImageView(device, view, nil)
}

// CreateFramebuffer implements Driver.
func (VulkanDriver) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo) (vk.Framebuffer, error) {
	var framebuffer vk.Framebuffer
	if err := vk.Error(vk.CreateFramebuffer(device, info, nil, &framebuffer)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateFramebuffer()")
	}
	return framebuffer, nil
}

// DestroyFramebuffer implements Driver.
func (VulkanDriver) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	vk.DestroyFramebuffer(device, framebuffer, nil)
}

// CreateRenderPass implements Driver.
func (VulkanDriver) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo) (vk.RenderPass, error) {
	var renderPass vk.RenderPass
	if err := vk.Error(vk.CreateRenderPass(device, info, nil, &renderPass)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateRenderPass()")
	}
	return renderPass, nil
}

// DestroyRenderPass implements Driver.
func (VulkanDriver) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	vk.DestroyRenderPass(device, renderPass, nil)
}

// DeviceWaitIdle implements Driver.
func (VulkanDriver) DeviceWaitIdle(device vk.Device) error {
	if err := vk.Error(vk.DeviceWaitIdle(device)); err != nil {
		return errors.Wrap(err, "vk.DeviceWaitIdle()")
	}
	return nil
}
