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

// State is the lifecycle stage of a Swapchain.
type State int

// Swapchain states
const (
	Uninitialized State = iota
	ChainReady
	FullyReady
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case ChainReady:
		return "chain ready"
	case FullyReady:
		return "fully ready"
	default:
		return "unknown"
	}
}

var _ gfx.Releasable = (*Swapchain)(nil)

// NewSwapchain creates an empty Swapchain for the logical device.
// Nothing is allocated until Create is called.
func NewSwapchain(drv Driver, device vk.Device) *Swapchain {
	return &Swapchain{
		driver: drv,
		device: device,
	}
}

// Swapchain owns the presentation chain, its image views and the
// framebuffers built on them. It must only be used from one goroutine.
// Handles it returns are valid until the next Destroy,
// DestroyFramebuffers, Recreate or Release.
type Swapchain struct {
	driver Driver
	device vk.Device

	chain        *Chain
	views        ImageViews
	framebuffers Framebuffers
}

// Create builds the presentation chain and a view for each of its images.
// On failure nothing is left allocated.
func (s *Swapchain) Create(physicalDevice vk.PhysicalDevice, surface vk.Surface, window gfx.WindowSizer) error {
	if s.chain != nil {
		return ErrChainExists
	}

	chain, err := NewChain(s.driver, s.device, physicalDevice, surface, window)
	if err != nil {
		return errors.Wrap(err, "creating presentation chain")
	}

	views, err := BuildViews(s.driver, s.device, chain)
	if err != nil {
		// No work can reference a chain that was never handed out.
		chain.destroy(s.driver, s.device)
		return errors.Wrap(err, "creating image views")
	}

	s.chain = chain
	s.views = views
	return nil
}

// CreateFramebuffers builds a framebuffer per image view for renderPass.
// Framebuffers of a previous render pass are destroyed first.
func (s *Swapchain) CreateFramebuffers(renderPass vk.RenderPass) error {
	if s.chain == nil {
		return ErrNoChain
	}
	s.DestroyFramebuffers()

	framebuffers, err := BuildFramebuffers(s.driver, s.device, renderPass, s.views, s.chain.extent)
	if err != nil {
		return errors.Wrap(err, "creating framebuffers")
	}
	s.framebuffers = framebuffers
	return nil
}

// DestroyFramebuffers waits for the device to idle and destroys the
// framebuffers. Does nothing when there are none.
func (s *Swapchain) DestroyFramebuffers() {
	if len(s.framebuffers) == 0 {
		return
	}
	s.waitIdle()

	s.framebuffers.destroy(s.driver, s.device)
	s.framebuffers = nil
}

// Destroy waits for the device to idle, then destroys the image views
// and the presentation chain. Framebuffers still present are destroyed
// before the views they reference. Does nothing when already destroyed.
func (s *Swapchain) Destroy() {
	if s.chain == nil && len(s.views) == 0 && len(s.framebuffers) == 0 {
		return
	}
	s.waitIdle()

	s.framebuffers.destroy(s.driver, s.device)
	s.framebuffers = nil

	s.views.destroy(s.driver, s.device)
	s.views = nil

	if s.chain != nil {
		s.chain.destroy(s.driver, s.device)
		s.chain = nil
	}
	log.Info("swapchain destroyed")
}

// Release implements gfx.Releasable. It is the single teardown path,
// safe to defer right after NewSwapchain.
func (s *Swapchain) Release() {
	s.DestroyFramebuffers()
	s.Destroy()
}

// Recreate tears everything down and builds it again for the current
// surface state, for example after the window was resized. Framebuffers
// are only built when renderPass is not nil.
func (s *Swapchain) Recreate(physicalDevice vk.PhysicalDevice, surface vk.Surface, window gfx.WindowSizer, renderPass vk.RenderPass) error {
	s.Release()

	if err := s.Create(physicalDevice, surface, window); err != nil {
		return err
	}
	if renderPass == nil {
		return nil
	}
	if err := s.CreateFramebuffers(renderPass); err != nil {
		s.Destroy()
		return err
	}
	return nil
}

func (s *Swapchain) waitIdle() {
	if err := s.driver.DeviceWaitIdle(s.device); err != nil {
		log.WithError(err).Error("device did not idle before swapchain teardown")
	}
}

// State returns the current lifecycle stage.
func (s *Swapchain) State() State {
	switch {
	case s.chain == nil:
		return Uninitialized
	case len(s.framebuffers) == 0:
		return ChainReady
	default:
		return FullyReady
	}
}

// Chain returns the presentation chain, nil before Create.
func (s *Swapchain) Chain() *Chain {
	return s.chain
}

// Handle returns the swapchain handle, nil before Create.
func (s *Swapchain) Handle() vk.Swapchain {
	if s.chain == nil {
		return nil
	}
	return s.chain.swapchain
}

// Format returns the chosen image format.
func (s *Swapchain) Format() vk.SurfaceFormat {
	if s.chain == nil {
		return vk.SurfaceFormat{}
	}
	return s.chain.format
}

// Extent returns the chosen image extent.
func (s *Swapchain) Extent() vk.Extent2D {
	if s.chain == nil {
		return vk.Extent2D{}
	}
	return s.chain.extent
}

// PresentMode returns the chosen present mode.
func (s *Swapchain) PresentMode() vk.PresentMode {
	if s.chain == nil {
		return vk.PresentModeFifo
	}
	return s.chain.presentMode
}

// Images returns the presentable images.
func (s *Swapchain) Images() []vk.Image {
	if s.chain == nil {
		return nil
	}
	return s.chain.images
}

// Views returns the image views, one per image.
func (s *Swapchain) Views() ImageViews {
	return s.views
}

// Framebuffers returns the framebuffers, one per image view.
func (s *Swapchain) Framebuffers() Framebuffers {
	return s.framebuffers
}

// Framebuffer returns the framebuffer for an image index
// returned by vkAcquireNextImageKHR.
func (s *Swapchain) Framebuffer(imageIndex uint32) (vk.Framebuffer, error) {
	if int(imageIndex) >= len(s.framebuffers) {
		return nil, errors.Wrapf(ErrImageIndex, "index %d of %d", imageIndex, len(s.framebuffers))
	}
	return s.framebuffers[imageIndex], nil
}
