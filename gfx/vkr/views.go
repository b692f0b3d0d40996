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

// ImageViews holds one color view for every image of a Chain, indexed the same.
type ImageViews []vk.ImageView

// BuildViews creates a 2D color view of each chain image. If any view
// fails, the views created so far are destroyed and none are returned.
func BuildViews(drv Driver, device vk.Device, chain *Chain) (ImageViews, error) {
	views := make(ImageViews, 0, len(chain.images))
	for idx, image := range chain.images {
		ivci := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    image,
			ViewType: vk.ImageViewType2d,
			Format:   chain.format.Format,
			Components: vk.ComponentMapping{
				R: vk.ComponentSwizzleIdentity,
				G: vk.ComponentSwizzleIdentity,
				B: vk.ComponentSwizzleIdentity,
				A: vk.ComponentSwizzleIdentity,
			},
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		}

		view, err := drv.CreateImageView(device, &ivci)
		if err != nil {
			views.destroy(drv, device)
			return nil, errors.Wrapf(err, "image view %d", idx)
		}
		views = append(views, view)
	}

	log.WithField("views", len(views)).Info("image views created")
	return views, nil
}

func (iv ImageViews) destroy(drv Driver, device vk.Device) {
	for _, view := range iv {
		drv.DestroyImageView(device, view)
	}
}
