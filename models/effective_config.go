// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"reflect"
)

// EffectiveConfigParams carries the already merged and validated values used
// to build an [EffectiveConfig].
type EffectiveConfigParams struct {
	CloudName    string
	APIKey       string
	APISecret    string
	PrivateCdn   bool
	Secure       bool
	UseComponent *bool
	Extra        map[string]any
}

// EffectiveConfig is the resolved Cloudinary module configuration shared by
// the server-side client and both runtime plugins.
//
// It is immutable once constructed: all fields are unexported and every
// accessor that could leak a reference returns a copy. A single instance can
// therefore be handed to any number of readers.
type EffectiveConfig struct {
	cloudName    string
	apiKey       string
	apiSecret    string
	privateCdn   bool
	secure       bool
	useComponent *bool
	extra        map[string]any
}

// NewEffectiveConfig builds an [EffectiveConfig] from p. The params are
// copied, so the caller may keep using them afterwards.
func NewEffectiveConfig(p EffectiveConfigParams) *EffectiveConfig {
	return &EffectiveConfig{
		cloudName:    p.CloudName,
		apiKey:       p.APIKey,
		apiSecret:    p.APISecret,
		privateCdn:   p.PrivateCdn,
		secure:       p.Secure,
		useComponent: cloneBool(p.UseComponent),
		extra:        CloneMap(p.Extra),
	}
}

// CloudName returns the Cloudinary account name. Never empty.
func (c *EffectiveConfig) CloudName() string { return c.cloudName }

// APIKey returns the API key, or an empty string when not configured.
func (c *EffectiveConfig) APIKey() string { return c.apiKey }

// APISecret returns the API secret, or an empty string when not configured.
func (c *EffectiveConfig) APISecret() string { return c.apiSecret }

// PrivateCdn reports whether assets are delivered from a private CDN.
func (c *EffectiveConfig) PrivateCdn() bool { return c.privateCdn }

// Secure reports whether assets are delivered over https.
func (c *EffectiveConfig) Secure() bool { return c.secure }

// UseComponent returns a copy of the passthrough component flag, or nil.
func (c *EffectiveConfig) UseComponent() *bool { return cloneBool(c.useComponent) }

// Extra returns a deep copy of the opaque delivery defaults.
func (c *EffectiveConfig) Extra() map[string]any { return CloneMap(c.extra) }

// ExtraString returns Extra[key] when it holds a string.
func (c *EffectiveConfig) ExtraString(key string) (string, bool) {
	s, ok := c.extra[key].(string)
	return s, ok
}

// HasCredentials reports whether both API key and secret are configured.
func (c *EffectiveConfig) HasCredentials() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// Equal reports whether c and other hold the same values.
func (c *EffectiveConfig) Equal(other *EffectiveConfig) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.cloudName == other.cloudName &&
		c.apiKey == other.apiKey &&
		c.apiSecret == other.apiSecret &&
		c.privateCdn == other.privateCdn &&
		c.secure == other.secure &&
		reflect.DeepEqual(c.useComponent, other.useComponent) &&
		reflect.DeepEqual(c.extra, other.extra)
}

// MarshalJSON encodes the config in the flat camelCase form consumed by the
// generated runtime plugins. Extra keys sit next to the known keys; known
// keys win on collision.
func (c *EffectiveConfig) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.extra)+7)
	for k, v := range c.extra {
		out[k] = v
	}

	out[KeyCloudName] = c.cloudName
	out[KeyPrivateCdn] = c.privateCdn
	out[KeySecure] = c.secure
	if c.apiKey != "" {
		out[KeyAPIKey] = c.apiKey
	}
	if c.apiSecret != "" {
		out[KeyAPISecret] = c.apiSecret
	}
	if c.useComponent != nil {
		out[KeyUseComponent] = *c.useComponent
	}

	return json.Marshal(out)
}
