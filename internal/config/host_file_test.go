// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

func writeHostConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadHostConfig_Formats(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "yaml",
			file: "nuxt.config.yaml",
			body: `
head:
  title: site
cloudinary:
  cloudName: acme
  privateCDN: true
  secure: false
  transformation:
    quality: auto
`,
		},
		{
			name: "toml",
			file: "nuxt.config.toml",
			body: `
[head]
title = "site"

[cloudinary]
cloudName = "acme"
privateCDN = true
secure = false

[cloudinary.transformation]
quality = "auto"
`,
		},
		{
			name: "jsonc",
			file: "nuxt.config.jsonc",
			body: `{
  // site head
  "head": {"title": "site"},
  "cloudinary": {
    "cloudName": "acme",
    "privateCDN": true,
    "secure": false, /* explicit */
    "transformation": {"quality": "auto"},
  },
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeHostConfig(t, tt.file, tt.body)

			opts, err := LoadHostConfig(path)
			require.NoError(t, err)

			assert.Equal(t, "acme", opts.CloudName)
			assert.Equal(t, models.Bool(true), opts.PrivateCDN)
			assert.Equal(t, models.Bool(false), opts.Secure)
			assert.Equal(t, map[string]any{"transformation": map[string]any{"quality": "auto"}}, opts.Extra)
		})
	}
}

func TestLoadHostConfig_EmptyPath(t *testing.T) {
	opts, err := LoadHostConfig("")
	require.NoError(t, err)
	assert.True(t, opts.IsZero())
}

func TestLoadHostConfig_NoNamespace(t *testing.T) {
	path := writeHostConfig(t, "nuxt.config.json", `{"head": {"title": "site"}}`)

	opts, err := LoadHostConfig(path)
	require.NoError(t, err)
	assert.True(t, opts.IsZero())
}

func TestLoadHostConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr error
	}{
		{name: "unsupported extension", file: "nuxt.config.ini", body: "x=1", wantErr: ErrUnsupportedConfigFormat},
		{name: "namespace not a table", file: "c.yaml", body: "cloudinary: acme\n", wantErr: ErrInvalidHostConfig},
		{name: "wrong field type", file: "c.json", body: `{"cloudinary": {"cloudName": 7}}`, wantErr: models.ErrInvalidOptionType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeHostConfig(t, tt.file, tt.body)

			_, err := LoadHostConfig(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadHostConfig_MalformedFile(t *testing.T) {
	path := writeHostConfig(t, "c.json", "{not valid json")

	_, err := LoadHostConfig(path)
	assert.Error(t, err)
}

func TestLoadHostConfig_FileNotFound(t *testing.T) {
	_, err := LoadHostConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
