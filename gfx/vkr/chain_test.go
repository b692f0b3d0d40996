// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr_test

import (
	"testing"

	"github.com/devblok/koru-swapchain/gfx/vkr"
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChain(t *testing.T) {
	drv := newFakeDriver()
	drv.capabilities.CurrentTransform = vk.SurfaceTransformRotate90Bit
	drv.presentModes = []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox}
	window := newWindowSize(1920, 1080)

	chain, err := vkr.NewChain(drv, fakeDevice(), nil, nil, window)
	require.NoError(t, err)

	require.Len(t, drv.swapchainInfos, 1)
	info := drv.swapchainInfos[0]
	assert.Equal(t, vk.StructureTypeSwapchainCreateInfo, info.SType)
	assert.Equal(t, uint32(3), info.MinImageCount)
	assert.Equal(t, vk.FormatB8g8r8a8Unorm, info.ImageFormat)
	assert.Equal(t, vk.ColorSpaceSrgbNonlinear, info.ImageColorSpace)
	assert.Equal(t, uint32(800), info.ImageExtent.Width)
	assert.Equal(t, uint32(600), info.ImageExtent.Height)
	assert.Equal(t, uint32(1), info.ImageArrayLayers)
	assert.Equal(t, vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit), info.ImageUsage)
	assert.Equal(t, vk.SharingModeExclusive, info.ImageSharingMode)
	assert.Zero(t, info.QueueFamilyIndexCount)
	assert.Equal(t, vk.SurfaceTransformRotate90Bit, info.PreTransform)
	assert.Equal(t, vk.CompositeAlphaOpaqueBit, info.CompositeAlpha)
	assert.Equal(t, vk.PresentModeMailbox, info.PresentMode)
	assert.Equal(t, vk.Bool32(vk.True), info.Clipped)
	assert.Nil(t, info.OldSwapchain)
	assert.Zero(t, window.calls)

	assert.NotNil(t, chain.Handle())
	assert.Len(t, chain.Images(), 3)
	assertFormat(t, bgraUnorm, chain.Format())
	assert.Equal(t, vk.PresentModeMailbox, chain.PresentMode())
	assert.Equal(t, uint32(800), chain.Extent().Width)
	assert.Equal(t, uint32(600), chain.Extent().Height)
}

func TestNewChainUsesDriverImageCount(t *testing.T) {
	drv := newFakeDriver()
	drv.imageCount = 5

	chain, err := vkr.NewChain(drv, fakeDevice(), nil, nil, newWindowSize(800, 600))
	require.NoError(t, err)
	assert.Equal(t, uint32(3), drv.swapchainInfos[0].MinImageCount)
	assert.Len(t, chain.Images(), 5)
}

func TestNewChainNoFormats(t *testing.T) {
	drv := newFakeDriver()
	drv.formats = nil

	_, err := vkr.NewChain(drv, fakeDevice(), nil, nil, newWindowSize(800, 600))
	assert.Equal(t, vkr.ErrNoSurfaceFormats, err)
	assert.Empty(t, drv.swapchainInfos)
}

func TestNewChainProbeError(t *testing.T) {
	drv := newFakeDriver()
	drv.capabilitiesErr = errDriver

	_, err := vkr.NewChain(drv, fakeDevice(), nil, nil, newWindowSize(800, 600))
	require.Error(t, err)
	assert.Equal(t, errDriver, errors.Cause(err))
	assert.Contains(t, err.Error(), "probing surface")
}

func TestNewChainSwapchainError(t *testing.T) {
	drv := newFakeDriver()
	drv.swapchainErr = errDriver

	_, err := vkr.NewChain(drv, fakeDevice(), nil, nil, newWindowSize(800, 600))
	assert.Equal(t, errDriver, errors.Cause(err))
	assert.Empty(t, drv.live)
}

func TestNewChainImagesError(t *testing.T) {
	drv := newFakeDriver()
	drv.imagesErr = errDriver

	_, err := vkr.NewChain(drv, fakeDevice(), nil, nil, newWindowSize(800, 600))
	assert.Equal(t, errDriver, errors.Cause(err))
	assert.Empty(t, drv.live)
	assert.Equal(t, []string{opCreateSwapchain, opDestroySwapchain}, drv.names())
}

func TestNewChainNoImages(t *testing.T) {
	drv := newFakeDriver()
	drv.imageCount = -1

	_, err := vkr.NewChain(drv, fakeDevice(), nil, nil, newWindowSize(800, 600))
	assert.Equal(t, vkr.ErrNoImages, err)
	assert.Empty(t, drv.live)
}
