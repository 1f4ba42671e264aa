// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

// overlay returns base with every field that is present in top replaced by
// top's value. Known fields are merged one by one; Extra is deep-merged so
// nested maps combine while scalars from top replace scalars from base.
//
// Neither argument is modified.
func overlay(base, top models.Options) (models.Options, error) {
	merged := base.Clone()
	top = top.Clone()

	if top.CloudName != "" {
		merged.CloudName = top.CloudName
	}
	if top.APIKey != "" {
		merged.APIKey = top.APIKey
	}
	if top.APISecret != "" {
		merged.APISecret = top.APISecret
	}
	if top.PrivateCDN != nil {
		merged.PrivateCDN = top.PrivateCDN
	}
	if top.PrivateCdn != nil {
		merged.PrivateCdn = top.PrivateCdn
	}
	if top.Secure != nil {
		merged.Secure = top.Secure
	}
	if top.UseComponent != nil {
		merged.UseComponent = top.UseComponent
	}

	switch {
	case len(top.Extra) == 0:
	case merged.Extra == nil:
		merged.Extra = top.Extra
	default:
		if err := mergo.Merge(&merged.Extra, top.Extra, mergo.WithOverride); err != nil {
			return models.Options{}, fmt.Errorf("error merging extra options: %w", err)
		}
	}

	return merged, nil
}

// fillDefaults sets every field of defaults that is still absent in opts.
// Fields already present in opts are never touched.
func fillDefaults(opts, defaults models.Options) models.Options {
	if opts.CloudName == "" {
		opts.CloudName = defaults.CloudName
	}
	if opts.PrivateCdn == nil {
		opts.PrivateCdn = defaults.PrivateCdn
	}
	if opts.Secure == nil {
		opts.Secure = defaults.Secure
	}
	return opts
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
