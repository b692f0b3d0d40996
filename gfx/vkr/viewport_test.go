// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr_test

import (
	"testing"

	"github.com/devblok/koru-swapchain/gfx/vkr"
	vk "github.com/devblok/vulkan"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestViewport(t *testing.T) {
	viewport := vkr.Viewport(vk.Extent2D{Width: 1024, Height: 768})
	assert.Equal(t, float32(0), viewport.X)
	assert.Equal(t, float32(0), viewport.Y)
	assert.Equal(t, float32(1024), viewport.Width)
	assert.Equal(t, float32(768), viewport.Height)
	assert.Equal(t, float32(0), viewport.MinDepth)
	assert.Equal(t, float32(1), viewport.MaxDepth)
}

func TestScissor(t *testing.T) {
	scissor := vkr.Scissor(vk.Extent2D{Width: 1024, Height: 768})
	assert.Equal(t, int32(0), scissor.Offset.X)
	assert.Equal(t, int32(0), scissor.Offset.Y)
	assert.Equal(t, uint32(1024), scissor.Extent.Width)
	assert.Equal(t, uint32(768), scissor.Extent.Height)
}

func TestProjection(t *testing.T) {
	projection := vkr.Projection(vk.Extent2D{Width: 800, Height: 600}, 45, 0.1, 100)
	expected := glm.Perspective(glm.DegToRad(45), 800.0/600.0, 0.1, 100)

	assert.InDelta(t, expected[0], projection[0], 1e-6)
	assert.InDelta(t, -expected[5], projection[5], 1e-6)
	assert.InDelta(t, expected[10], projection[10], 1e-6)
	assert.Greater(t, projection[0], float32(0))
	assert.Less(t, projection[5], float32(0), "y axis points down in clip space")
}

func TestProjectionZeroHeight(t *testing.T) {
	projection := vkr.Projection(vk.Extent2D{Width: 800, Height: 0}, 60, 0.1, 10)
	assert.InDelta(t, projection[0], -projection[5], 1e-6)
}
