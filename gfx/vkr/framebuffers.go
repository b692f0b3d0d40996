// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Framebuffers holds one framebuffer for every image view, indexed the same.
type Framebuffers []vk.Framebuffer

// BuildFramebuffers binds each view as the single color attachment of a
// framebuffer compatible with renderPass. If any framebuffer fails, the
// ones created so far are destroyed and none are returned.
func BuildFramebuffers(drv Driver, device vk.Device, renderPass vk.RenderPass, views ImageViews, extent vk.Extent2D) (Framebuffers, error) {
	framebuffers := make(Framebuffers, 0, len(views))
	for idx, view := range views {
		fci := vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			RenderPass:      renderPass,
			AttachmentCount: 1,
			PAttachments:    []vk.ImageView{view},
			Width:           extent.Width,
			Height:          extent.Height,
			Layers:          1,
		}

		framebuffer, err := drv.CreateFramebuffer(device, &fci)
		if err != nil {
			framebuffers.destroy(drv, device)
			return nil, errors.Wrapf(err, "framebuffer %d", idx)
		}
		framebuffers = append(framebuffers, framebuffer)
	}

	log.WithFields(log.Fields{
		"framebuffers": len(framebuffers),
		"width":        extent.Width,
		"height":       extent.Height,
	}).Info("framebuffers created")
	return framebuffers, nil
}

func (fb Framebuffers) destroy(drv Driver, device vk.Device) {
	for _, framebuffer := range fb {
		drv.DestroyFramebuffer(device, framebuffer)
	}
}
