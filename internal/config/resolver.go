// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

// Resolver turns the host-level cloudinary namespace and the module options
// into a single validated [models.EffectiveConfig].
type Resolver struct {
	reporter Reporter
}

// NewResolver returns a Resolver that emits diagnostics through reporter.
// A nil reporter discards them.
func NewResolver(reporter Reporter) *Resolver {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Resolver{reporter: reporter}
}

// Resolve merges hostConfig and userOptions and validates the result.
//
// Merge order: hostConfig is the base and userOptions overrides it field by
// field. The derived privateCdn flag (true when any layer sets privateCDN or
// privateCdn) only fills the canonical flag when neither layer set it.
//
// A missing cloudName is fatal: an error diagnostic is emitted and a
// *ConfigurationError is returned together with a nil config. Missing
// apiKey/apiSecret only produce a warning.
//
// Neither input is modified.
func (r *Resolver) Resolve(hostConfig, userOptions models.Options) (*models.EffectiveConfig, error) {
	derivedPrivateCdn := isTrue(hostConfig.PrivateCDN) ||
		isTrue(hostConfig.PrivateCdn) ||
		isTrue(userOptions.PrivateCDN) ||
		isTrue(userOptions.PrivateCdn)

	merged, err := overlay(hostConfig, userOptions)
	if err != nil {
		return nil, err
	}
	merged = fillDefaults(merged, models.Options{PrivateCdn: models.Bool(derivedPrivateCdn)})

	if strings.TrimSpace(merged.CloudName) == "" {
		r.reporter.Error(missingCloudNameMessage())
		return nil, &ConfigurationError{Field: models.KeyCloudName, Err: ErrMissingCloudName}
	}

	if merged.Secure == nil {
		merged.Secure = models.Bool(true)
	}

	if merged.APIKey == "" || merged.APISecret == "" {
		r.reporter.Warn(missingCredentialsMessage())
	}

	return models.NewEffectiveConfig(models.EffectiveConfigParams{
		CloudName:    merged.CloudName,
		APIKey:       merged.APIKey,
		APISecret:    merged.APISecret,
		PrivateCdn:   *merged.PrivateCdn,
		Secure:       *merged.Secure,
		UseComponent: merged.UseComponent,
		Extra:        merged.Extra,
	}), nil
}

// Resolve is a shorthand for NewResolver(reporter).Resolve(hostConfig, userOptions).
func Resolve(hostConfig, userOptions models.Options, reporter Reporter) (*models.EffectiveConfig, error) {
	return NewResolver(reporter).Resolve(hostConfig, userOptions)
}
