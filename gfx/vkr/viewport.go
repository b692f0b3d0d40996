// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/devblok/vulkan"
	glm "github.com/go-gl/mathgl/mgl32"
)

// Viewport covers the whole extent with the full depth range.
func Viewport(extent vk.Extent2D) vk.Viewport {
	return vk.Viewport{
		X:        0,
		Y:        0,
		Width:    float32(extent.Width),
		Height:   float32(extent.Height),
		MinDepth: 0,
		MaxDepth: 1,
	}
}

// Scissor covers the whole extent.
func Scissor(extent vk.Extent2D) vk.Rect2D {
	return vk.Rect2D{
		Offset: vk.Offset2D{
			X: 0,
			Y: 0,
		},
		Extent: vk.Extent2D{
			Width:  extent.Width,
			Height: extent.Height,
		},
	}
}

// Projection returns a perspective projection matching the aspect ratio
// of the extent, in Vulkan clip space. fovy is in degrees.
func Projection(extent vk.Extent2D, fovy, near, far float32) glm.Mat4 {
	aspect := float32(1)
	if extent.Height != 0 {
		aspect = float32(extent.Width) / float32(extent.Height)
	}
	projection := glm.Perspective(glm.DegToRad(fovy), aspect, near, far)
	projection[5] *= -1 // Flip from OpenGl to Vulkan projection
	return projection
}
