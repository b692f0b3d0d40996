// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core provides the collaborators the presentation chain depends on:
// the Vulkan instance with its window surface, the logical device, engine
// configuration and timing services.
package core

import (
	"unsafe"

	vk "github.com/devblok/vulkan"
)

// Instance describes a Vulkan instance and supporting methods.
// Once created it is ready to use.
type Instance interface {
	// PhysicalDevicesInfo returns a struct for each Physical Device
	// along with info about those devices
	PhysicalDevicesInfo() []PhysicalDeviceInfo

	// AvailableDevices returns handles of Physical Devices
	// from the Vulkan API
	AvailableDevices() []vk.PhysicalDevice

	// SetSurface sets the window surface for rendering
	SetSurface(unsafe.Pointer)

	// Surface returns the window surface, if it's not set
	// it should return a valid but empty surface
	Surface() vk.Surface

	// Extensions returns enabled instance extensions
	Extensions() []string

	// Instance returns the inner handle of the underlying API
	Instance() interface{}

	// Destroy destroys the surface and the instance
	Destroy()
}

// Device describes a logical device created on one of the
// physical devices of an Instance.
type Device interface {
	// LogicalDevice returns the created logical device
	LogicalDevice() vk.Device

	// PhysicalDevice returns the device the logical device was created on
	PhysicalDevice() vk.PhysicalDevice

	// Queue returns the graphics queue, which can present to the surface
	Queue() vk.Queue

	// QueueFamily returns the index of the queue family Queue belongs to
	QueueFamily() uint32

	// Destroy waits for the device to idle and destroys it
	Destroy()
}

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID            int
	VendorID      int
	DriverVersion int
	Name          string
	Invalid       bool
	Extensions    []string
	Layers        []string
	Memory        uint
}
