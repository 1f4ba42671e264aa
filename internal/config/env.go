// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

// EnvPrefix is prepended to every environment variable read by [parseEnv].
const EnvPrefix = "CLOUDINARY_"

// envOptions mirrors [models.Options] for environment lookup.
//
// Flags are kept as strings so that an unset variable stays distinguishable
// from an explicit "false".
type envOptions struct {
	// Env: CLOUDINARY_CLOUD_NAME
	CloudName string `env:"CLOUD_NAME"`
	// Env: CLOUDINARY_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: CLOUDINARY_API_SECRET
	APISecret string `env:"API_SECRET"`
	// Env: CLOUDINARY_SECURE
	Secure string `env:"SECURE"`
	// Env: CLOUDINARY_PRIVATE_CDN
	PrivateCdn string `env:"PRIVATE_CDN"`
	// Env: CLOUDINARY_USE_COMPONENT
	UseComponent string `env:"USE_COMPONENT"`
	// ConfigPath points at the host config file.
	// Env: CLOUDINARY_CONFIG
	ConfigPath string `env:"CONFIG"`
}

// parseEnv populates cfg from CLOUDINARY_* environment variables using the
// caarlos0/env library.
func parseEnv(cfg *envOptions) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func (e envOptions) options() (models.Options, error) {
	secure, err := parseOptionalBool(EnvPrefix+"SECURE", e.Secure)
	if err != nil {
		return models.Options{}, err
	}
	privateCdn, err := parseOptionalBool(EnvPrefix+"PRIVATE_CDN", e.PrivateCdn)
	if err != nil {
		return models.Options{}, err
	}
	useComponent, err := parseOptionalBool(EnvPrefix+"USE_COMPONENT", e.UseComponent)
	if err != nil {
		return models.Options{}, err
	}

	return models.Options{
		CloudName:    e.CloudName,
		APIKey:       e.APIKey,
		APISecret:    e.APISecret,
		Secure:       secure,
		PrivateCdn:   privateCdn,
		UseComponent: useComponent,
	}, nil
}

func parseOptionalBool(name, raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %s: %w", name, err)
	}
	return &v, nil
}
