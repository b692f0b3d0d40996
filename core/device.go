// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNoQueueFamily is returned when no queue family can both
// render graphics and present to the surface.
var ErrNoQueueFamily = errors.New("no queue family supports both graphics and present")

// NewVulkanDevice creates a logical device on the physical device
// with a single queue that renders and presents to the surface.
// The presentation chain shares images exclusively, so separate
// graphics and present families are not supported.
func NewVulkanDevice(physicalDevice vk.PhysicalDevice, surface vk.Surface, cfg RendererConfiguration) (*VulkanDevice, error) {
	queueFamily, err := findQueueFamily(physicalDevice, surface)
	if err != nil {
		return nil, err
	}

	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: queueFamily,
		QueueCount:       1,
		PQueuePriorities: []float32{1},
	}}

	extensions := cfg.DeviceExtensions
	if !containsString(extensions, vk.KhrSwapchainExtensionName) {
		extensions = append(extensions, vk.KhrSwapchainExtensionName)
	}

	dci := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
	}

	var device vk.Device
	if err := vk.Error(vk.CreateDevice(physicalDevice, &dci, nil, &device)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateDevice()")
	}

	var queue vk.Queue
	vk.GetDeviceQueue(device, queueFamily, 0, &queue)

	log.WithFields(log.Fields{
		"queueFamily": queueFamily,
		"extensions":  extensions,
	}).Info("logical device created")

	return &VulkanDevice{
		physicalDevice: physicalDevice,
		logicalDevice:  device,
		queue:          queue,
		queueFamily:    queueFamily,
	}, nil
}

var _ Device = (*VulkanDevice)(nil)

// VulkanDevice is a logical device with its graphics queue
type VulkanDevice struct {
	physicalDevice vk.PhysicalDevice
	logicalDevice  vk.Device
	queue          vk.Queue
	queueFamily    uint32
}

func findQueueFamily(physicalDevice vk.PhysicalDevice, surface vk.Surface) (uint32, error) {
	var queueFamilyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &queueFamilyCount, nil)
	if queueFamilyCount == 0 {
		return 0, errors.New("vk.GetPhysicalDeviceQueueFamilyProperties(): no queue families on GPU")
	}
	queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &queueFamilyCount, queueFamilies)

	for i := uint32(0); i < queueFamilyCount; i++ {
		queueFamilies[i].Deref()
		if queueFamilies[i].QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) == 0 {
			continue
		}

		var supportsPresent vk.Bool32
		if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(physicalDevice, i, surface, &supportsPresent)); err != nil {
			return 0, errors.Wrap(err, "vk.GetPhysicalDeviceSurfaceSupport()")
		}
		if supportsPresent.B() {
			return i, nil
		}
	}
	return 0, ErrNoQueueFamily
}

// LogicalDevice implements interface
func (v *VulkanDevice) LogicalDevice() vk.Device {
	return v.logicalDevice
}

// PhysicalDevice implements interface
func (v *VulkanDevice) PhysicalDevice() vk.PhysicalDevice {
	return v.physicalDevice
}

// Queue implements interface
func (v *VulkanDevice) Queue() vk.Queue {
	return v.queue
}

// QueueFamily implements interface
func (v *VulkanDevice) QueueFamily() uint32 {
	return v.queueFamily
}

// Destroy implements interface
func (v *VulkanDevice) Destroy() {
	if v.logicalDevice == nil {
		return
	}
	vk.DeviceWaitIdle(v.logicalDevice)
	vk.DestroyDevice(v.logicalDevice, nil)
	v.logicalDevice = nil
}
