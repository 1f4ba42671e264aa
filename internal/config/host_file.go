// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

// Namespace is the key under which the host framework config keeps the
// module's host-level options.
const Namespace = "cloudinary"

// Supported host config formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// LoadHostConfig reads the host framework config file at path and returns
// the options found under [Namespace].
//
// An empty path, or a file without the namespace, yields empty options: the
// host is allowed to say nothing about the module.
func LoadHostConfig(path string) (models.Options, error) {
	if path == "" {
		return models.Options{}, nil
	}

	format, err := formatFromPath(path)
	if err != nil {
		return models.Options{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Options{}, fmt.Errorf("error reading host config file: %w", err)
	}

	opts, err := parseHostConfig(data, format)
	if err != nil {
		return models.Options{}, fmt.Errorf("%s: %w", path, err)
	}

	return opts, nil
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, filepath.Ext(path))
	}
}

func parseHostConfig(data []byte, format string) (models.Options, error) {
	var doc map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return models.Options{}, fmt.Errorf("error decoding yaml host config: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return models.Options{}, fmt.Errorf("error decoding toml host config: %w", err)
		}
	case FormatJSON:
		// JSONC: comments and trailing commas are stripped first.
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return models.Options{}, fmt.Errorf("error decoding json host config: %w", err)
		}
	default:
		return models.Options{}, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, format)
	}

	raw, ok := doc[Namespace]
	if !ok || raw == nil {
		return models.Options{}, nil
	}

	section, ok := raw.(map[string]any)
	if !ok {
		return models.Options{}, fmt.Errorf("%w: %q must be a table, got %T", ErrInvalidHostConfig, Namespace, raw)
	}

	opts, err := models.OptionsFromMap(section)
	if err != nil {
		return models.Options{}, fmt.Errorf("%w: %w", ErrInvalidHostConfig, err)
	}

	return opts, nil
}
