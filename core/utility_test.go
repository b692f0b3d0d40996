// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeString(t *testing.T) {
	assert.Equal(t, "VK_KHR_swapchain\x00", safeString("VK_KHR_swapchain"))
	assert.Equal(t, "VK_KHR_swapchain\x00", safeString("VK_KHR_swapchain\x00"))
	assert.Equal(t, "\x00", safeString(""))
}

func TestSafeStrings(t *testing.T) {
	safe := safeStrings([]string{"VK_KHR_surface", "VK_EXT_debug_report\x00"})
	assert.Equal(t, []string{"VK_KHR_surface\x00", "VK_EXT_debug_report\x00"}, safe)
	assert.Empty(t, safeStrings(nil))
}

func TestContainsString(t *testing.T) {
	exts := []string{"VK_KHR_surface", "VK_KHR_swapchain\x00"}
	assert.True(t, containsString(exts, "VK_KHR_swapchain"))
	assert.True(t, containsString(exts, "VK_KHR_surface"))
	assert.False(t, containsString(exts, "VK_EXT_debug_report"))
	assert.False(t, containsString(nil, "VK_KHR_swapchain"))
}

func BenchmarkSafeStrings(b *testing.B) {
	exts := []string{"VK_KHR_surface", "VK_KHR_xlib_surface", "VK_EXT_debug_report"}
	for idx := 0; idx < b.N; idx++ {
		safeStrings(exts)
	}
}
