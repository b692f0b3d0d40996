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

var _ gfx.Releasable = (*Presentation)(nil)

// Presentation is a Swapchain together with the color render pass its
// framebuffers are built for. The render pass always matches the format
// of the current chain.
type Presentation struct {
	driver         Driver
	device         vk.Device
	physicalDevice vk.PhysicalDevice
	surface        vk.Surface
	window         gfx.WindowSizer

	swapchain  *Swapchain
	renderPass vk.RenderPass
}

// NewPresentation builds the chain, a render pass for its format and the
// framebuffers. On failure everything built so far is released.
func NewPresentation(drv Driver, device vk.Device, physicalDevice vk.PhysicalDevice, surface vk.Surface, window gfx.WindowSizer) (*Presentation, error) {
	p := &Presentation{
		driver:         drv,
		device:         device,
		physicalDevice: physicalDevice,
		surface:        surface,
		window:         window,
		swapchain:      NewSwapchain(drv, device),
	}

	if err := p.swapchain.Create(physicalDevice, surface, window); err != nil {
		return nil, err
	}
	if err := p.build(); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

// build creates the render pass when there is none and the framebuffers.
func (p *Presentation) build() error {
	if p.renderPass == nil {
		renderPass, err := NewColorRenderPass(p.driver, p.device, p.swapchain.Format().Format)
		if err != nil {
			return errors.Wrap(err, "creating render pass")
		}
		p.renderPass = renderPass
	}
	return p.swapchain.CreateFramebuffers(p.renderPass)
}

// Resize recreates the chain for the current window size. The render pass
// is rebuilt only when the surface now reports a different format. On
// failure everything is released.
func (p *Presentation) Resize() error {
	previous := p.swapchain.Format()

	if err := p.swapchain.Recreate(p.physicalDevice, p.surface, p.window, nil); err != nil {
		p.Release()
		return err
	}

	current := p.swapchain.Format()
	if current.Format != previous.Format && p.renderPass != nil {
		log.WithFields(log.Fields{
			"from": previous.Format,
			"to":   current.Format,
		}).Info("surface format changed, rebuilding render pass")
		p.driver.DestroyRenderPass(p.device, p.renderPass)
		p.renderPass = nil
	}

	if err := p.build(); err != nil {
		p.Release()
		return err
	}
	return nil
}

// Release implements gfx.Releasable. The framebuffers, views and chain
// are destroyed after the device idles, the render pass last.
func (p *Presentation) Release() {
	p.swapchain.Release()
	if p.renderPass != nil {
		p.driver.DestroyRenderPass(p.device, p.renderPass)
		p.renderPass = nil
	}
}

// Swapchain returns the owned swapchain.
func (p *Presentation) Swapchain() *Swapchain {
	return p.swapchain
}

// RenderPass returns the render pass the framebuffers are built for,
// nil after Release.
func (p *Presentation) RenderPass() vk.RenderPass {
	return p.renderPass
}
