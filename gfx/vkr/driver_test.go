// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr_test

import (
	"io/ioutil"
	"math"
	"os"
	"testing"
	"unsafe"

	"github.com/devblok/koru-swapchain/gfx"
	"github.com/devblok/koru-swapchain/gfx/vkr"
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	log.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

var errDriver = errors.New("VK_ERROR_OUT_OF_DEVICE_MEMORY")

// Operations recorded by fakeDriver, in call order.
const (
	opWaitIdle           = "wait idle"
	opCreateSwapchain    = "create swapchain"
	opDestroySwapchain   = "destroy swapchain"
	opCreateImageView    = "create image view"
	opDestroyImageView   = "destroy image view"
	opCreateFramebuffer  = "create framebuffer"
	opDestroyFramebuffer = "destroy framebuffer"
	opCreateRenderPass   = "create render pass"
	opDestroyRenderPass  = "destroy render pass"
)

type op struct {
	name   string
	handle unsafe.Pointer
}

// fakeDriver is an in-memory Driver handing out unique handles and
// recording every call made on it.
type fakeDriver struct {
	capabilities vk.SurfaceCapabilities
	formats      []vk.SurfaceFormat
	presentModes []vk.PresentMode

	// imageCount overrides the number of images the swapchain gets,
	// zero means the requested MinImageCount and negative means none.
	imageCount int

	capabilitiesErr error
	formatsErr      error
	presentModesErr error
	swapchainErr    error
	imagesErr       error
	waitIdleErr     error

	// failViewAt and failFramebufferAt fail the n-th creation call
	// counted from zero, negative never fails.
	failViewAt        int
	failFramebufferAt int

	swapchainInfos   []vk.SwapchainCreateInfo
	viewInfos        []vk.ImageViewCreateInfo
	framebufferInfos []vk.FramebufferCreateInfo
	renderPassInfos  []vk.RenderPassCreateInfo

	viewCalls        int
	framebufferCalls int

	ops  []op
	live map[unsafe.Pointer]string
}

var _ vkr.Driver = (*fakeDriver)(nil)

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		capabilities: vk.SurfaceCapabilities{
			MinImageCount:    2,
			MaxImageCount:    0,
			CurrentExtent:    vk.Extent2D{Width: 800, Height: 600},
			MinImageExtent:   vk.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:   vk.Extent2D{Width: 4096, Height: 4096},
			CurrentTransform: vk.SurfaceTransformIdentityBit,
		},
		formats: []vk.SurfaceFormat{
			{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		},
		presentModes:      []vk.PresentMode{vk.PresentModeFifo},
		failViewAt:        -1,
		failFramebufferAt: -1,
		live:              make(map[unsafe.Pointer]string),
	}
}

// undefinedExtent makes the surface leave its size to the swapchain.
func (f *fakeDriver) undefinedExtent(min, max vk.Extent2D) {
	f.capabilities.CurrentExtent = vk.Extent2D{Width: math.MaxUint32, Height: math.MaxUint32}
	f.capabilities.MinImageExtent = min
	f.capabilities.MaxImageExtent = max
}

func (f *fakeDriver) alloc(kind string) unsafe.Pointer {
	h := unsafe.Pointer(new(uint64))
	f.live[h] = kind
	return h
}

func (f *fakeDriver) free(name string, h unsafe.Pointer) {
	delete(f.live, h)
	f.ops = append(f.ops, op{name: name, handle: h})
}

func (f *fakeDriver) count(name string) int {
	n := 0
	for _, o := range f.ops {
		if o.name == name {
			n++
		}
	}
	return n
}

func (f *fakeDriver) names() []string {
	names := make([]string, len(f.ops))
	for i, o := range f.ops {
		names[i] = o.name
	}
	return names
}

// handles returns the handles of every recorded op with that name, in order.
func (f *fakeDriver) handles(name string) []unsafe.Pointer {
	var hs []unsafe.Pointer
	for _, o := range f.ops {
		if o.name == name {
			hs = append(hs, o.handle)
		}
	}
	return hs
}

func (f *fakeDriver) SurfaceCapabilities(physicalDevice vk.PhysicalDevice, surface vk.Surface) (vk.SurfaceCapabilities, error) {
	return f.capabilities, f.capabilitiesErr
}

func (f *fakeDriver) SurfaceFormats(physicalDevice vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error) {
	return f.formats, f.formatsErr
}

func (f *fakeDriver) SurfacePresentModes(physicalDevice vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error) {
	return f.presentModes, f.presentModesErr
}

func (f *fakeDriver) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo) (vk.Swapchain, error) {
	f.swapchainInfos = append(f.swapchainInfos, *info)
	if f.swapchainErr != nil {
		return nil, f.swapchainErr
	}
	h := f.alloc("swapchain")
	f.ops = append(f.ops, op{name: opCreateSwapchain, handle: h})
	return vk.Swapchain(h), nil
}

func (f *fakeDriver) SwapchainImages(device vk.Device, swapchain vk.Swapchain) ([]vk.Image, error) {
	if f.imagesErr != nil {
		return nil, f.imagesErr
	}
	n := f.imageCount
	if n == 0 {
		n = int(f.swapchainInfos[len(f.swapchainInfos)-1].MinImageCount)
	}
	if n < 0 {
		n = 0
	}
	images := make([]vk.Image, n)
	for i := range images {
		// Images belong to the swapchain and are not tracked as live.
		images[i] = vk.Image(unsafe.Pointer(new(uint64)))
	}
	return images, nil
}

func (f *fakeDriver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	f.free(opDestroySwapchain, unsafe.Pointer(swapchain))
}

func (f *fakeDriver) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo) (vk.ImageView, error) {
	idx := f.viewCalls
	f.viewCalls++
	f.viewInfos = append(f.viewInfos, *info)
	if idx == f.failViewAt {
		return nil, errDriver
	}
	h := f.alloc("image view")
	f.ops = append(f.ops, op{name: opCreateImageView, handle: h})
	return vk.ImageView(h), nil
}

func (f *fakeDriver) DestroyImageView(device vk.Device, view vk.ImageView) {
	f.free(opDestroyImageView, unsafe.Pointer(view))
}

func (f *fakeDriver) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo) (vk.Framebuffer, error) {
	idx := f.framebufferCalls
	f.framebufferCalls++
	f.framebufferInfos = append(f.framebufferInfos, *info)
	if idx == f.failFramebufferAt {
		return nil, errDriver
	}
	h := f.alloc("framebuffer")
	f.ops = append(f.ops, op{name: opCreateFramebuffer, handle: h})
	return vk.Framebuffer(h), nil
}

func (f *fakeDriver) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	f.free(opDestroyFramebuffer, unsafe.Pointer(framebuffer))
}

func (f *fakeDriver) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo) (vk.RenderPass, error) {
	f.renderPassInfos = append(f.renderPassInfos, *info)
	h := f.alloc("render pass")
	f.ops = append(f.ops, op{name: opCreateRenderPass, handle: h})
	return vk.RenderPass(h), nil
}

func (f *fakeDriver) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	f.free(opDestroyRenderPass, unsafe.Pointer(renderPass))
}

func (f *fakeDriver) DeviceWaitIdle(device vk.Device) error {
	f.ops = append(f.ops, op{name: opWaitIdle})
	return f.waitIdleErr
}

func fakeDevice() vk.Device {
	return vk.Device(unsafe.Pointer(new(uint64)))
}

func fakeRenderPass() vk.RenderPass {
	return vk.RenderPass(unsafe.Pointer(new(uint64)))
}

// windowSize is a WindowSizer counting how often it was asked.
type windowSize struct {
	gfx.FixedSize
	calls int
}

func (w *windowSize) DrawableSize() (uint32, uint32) {
	w.calls++
	return w.FixedSize.DrawableSize()
}

func newWindowSize(width, height uint32) *windowSize {
	return &windowSize{FixedSize: gfx.FixedSize{Width: width, Height: height}}
}
