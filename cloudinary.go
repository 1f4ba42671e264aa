// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cloudinary is the public surface of the module: the option and
// config types, the host framework contract and the API types the module
// provides to the host at runtime.
package cloudinary

import (
	"github.com/MKhiriev/go-cloudinary-module/internal/config"
	"github.com/MKhiriev/go-cloudinary-module/internal/host"
	"github.com/MKhiriev/go-cloudinary-module/internal/media"
	"github.com/MKhiriev/go-cloudinary-module/internal/module"
	"github.com/MKhiriev/go-cloudinary-module/models"
)

type (
	// ServerAPI is provided to the server-side request context.
	ServerAPI = media.ServerAPI
	// ClientAPI is what the browser-side plugin exposes.
	ClientAPI = media.ClientAPI

	Options            = models.Options
	EffectiveConfig    = models.EffectiveConfig
	Framework          = host.Framework
	Reporter           = config.Reporter
	ConfigurationError = config.ConfigurationError
	SetupOption        = module.Option
	SetupResult        = module.Result
)

// ErrMissingCloudName is wrapped by the error returned from [Setup] when no
// cloud name is configured.
var ErrMissingCloudName = config.ErrMissingCloudName

// Setup installs the module into fw. See [module.Setup].
func Setup(fw Framework, userOptions Options, opts ...SetupOption) (*SetupResult, error) {
	return module.Setup(fw, userOptions, opts...)
}

// ServerAPIFromContext is re-exported from the module package.
var ServerAPIFromContext = module.ServerAPIFromContext
