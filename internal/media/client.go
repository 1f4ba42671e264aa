// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media provides the thin Cloudinary client objects injected into
// the host framework.
//
// [ClientAPI] is the browser-side surface: it only knows how to address
// delivered assets. [ServerAPI] adds Admin API access for server-side
// rendering. Both are parameterized by a resolved [models.EffectiveConfig]
// and never modify it.
//
// Transformations and uploads are out of scope; callers needing them use
// the Cloudinary SDK directly with the same config.
package media

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

const (
	sharedDeliveryHost = "res.cloudinary.com"
	privateHostSuffix  = "-res.cloudinary.com"

	// ExtraSecureDistribution overrides the delivery host for https URLs.
	ExtraSecureDistribution = "secureDistribution"
	// ExtraCName overrides the delivery host for plain http URLs.
	ExtraCName = "cname"
)

// ClientAPI is the Cloudinary client exposed to the browser runtime.
type ClientAPI struct {
	cfg *models.EffectiveConfig
}

// NewClientAPI returns a ClientAPI bound to cfg.
func NewClientAPI(cfg *models.EffectiveConfig) *ClientAPI {
	return &ClientAPI{cfg: cfg}
}

// Config returns the configuration the client was built with.
func (c *ClientAPI) Config() *models.EffectiveConfig {
	return c.cfg
}

// DeliveryHost returns the host assets are served from.
//
// Precedence: secureDistribution (https) or cname (http) from the delivery
// defaults, then the private CDN host, then the shared host.
func (c *ClientAPI) DeliveryHost() string {
	if c.cfg.Secure() {
		if host, ok := c.cfg.ExtraString(ExtraSecureDistribution); ok && host != "" {
			return host
		}
	} else if host, ok := c.cfg.ExtraString(ExtraCName); ok && host != "" {
		return host
	}

	if c.cfg.PrivateCdn() {
		return c.cfg.CloudName() + privateHostSuffix
	}
	return sharedDeliveryHost
}

// AssetURL returns the delivery URL of an uploaded asset without any
// transformation applied. resourceType is "image", "video" or "raw".
func (c *ClientAPI) AssetURL(resourceType, publicID string) string {
	scheme := "http"
	if c.cfg.Secure() {
		scheme = "https"
	}

	segments := make([]string, 0, 4)
	// Shared hosts multiplex accounts by path; private CDNs do not.
	if !c.cfg.PrivateCdn() {
		segments = append(segments, c.cfg.CloudName())
	}
	segments = append(segments, resourceType, "upload", strings.TrimLeft(publicID, "/"))

	u := url.URL{
		Scheme: scheme,
		Host:   c.DeliveryHost(),
		Path:   "/" + strings.Join(segments, "/"),
	}
	return u.String()
}
