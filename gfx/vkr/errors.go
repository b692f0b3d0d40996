// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import "github.com/pkg/errors"

// package errors
var (
	ErrNoSurfaceFormats = errors.New("surface reports no supported formats")
	ErrNoImages         = errors.New("swapchain has no images")
	ErrChainExists      = errors.New("presentation chain already created")
	ErrNoChain          = errors.New("presentation chain not created")
	ErrImageIndex       = errors.New("image index out of range")
)
