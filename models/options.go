// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"maps"
)

// Option keys as they appear in host config files and in the generated
// plugin payload.
const (
	KeyCloudName        = "cloudName"
	KeyAPIKey           = "apiKey"
	KeyAPISecret        = "apiSecret"
	KeyPrivateCDNLegacy = "privateCDN"
	KeyPrivateCdn       = "privateCdn"
	KeySecure           = "secure"
	KeyUseComponent     = "useComponent"
)

// ErrInvalidOptionType is returned by [OptionsFromMap] when a known key holds
// a value of the wrong type.
var ErrInvalidOptionType = errors.New("invalid option type")

// Options is a single layer of Cloudinary module configuration: either the
// host-level namespace from the framework config, or the per-invocation
// module options.
//
// Every field may be absent. Strings are absent when empty, flags are absent
// when nil. Anything the module does not interpret lives in Extra and is
// merged opaquely.
type Options struct {
	// CloudName identifies the Cloudinary account. Required after resolution.
	CloudName string `json:"cloudName,omitempty" yaml:"cloudName,omitempty"`

	// APIKey and APISecret are only needed for signed operations such as upload.
	APIKey    string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	APISecret string `json:"apiSecret,omitempty" yaml:"apiSecret,omitempty"`

	// PrivateCDN is the legacy spelling of the private CDN flag.
	PrivateCDN *bool `json:"privateCDN,omitempty" yaml:"privateCDN,omitempty"`

	// PrivateCdn is the canonical spelling of the private CDN flag.
	PrivateCdn *bool `json:"privateCdn,omitempty" yaml:"privateCdn,omitempty"`

	// Secure selects https delivery. nil means "not set" and resolves to true.
	Secure *bool `json:"secure,omitempty" yaml:"secure,omitempty"`

	// UseComponent is passed through to the runtime untouched.
	UseComponent *bool `json:"useComponent,omitempty" yaml:"useComponent,omitempty"`

	// Extra holds delivery and transformation defaults that are merged
	// without interpretation (e.g. secureDistribution, cname, transformation).
	Extra map[string]any `json:"-" yaml:"-"`
}

// OptionsFromMap converts a loosely typed option map, as produced by the
// YAML, TOML and JSON decoders, into [Options]. Known keys are type-checked;
// every other key is copied into Extra.
func OptionsFromMap(m map[string]any) (Options, error) {
	var opts Options

	for key, value := range m {
		var err error
		switch key {
		case KeyCloudName:
			opts.CloudName, err = stringOption(key, value)
		case KeyAPIKey:
			opts.APIKey, err = stringOption(key, value)
		case KeyAPISecret:
			opts.APISecret, err = stringOption(key, value)
		case KeyPrivateCDNLegacy:
			opts.PrivateCDN, err = boolOption(key, value)
		case KeyPrivateCdn:
			opts.PrivateCdn, err = boolOption(key, value)
		case KeySecure:
			opts.Secure, err = boolOption(key, value)
		case KeyUseComponent:
			opts.UseComponent, err = boolOption(key, value)
		default:
			if opts.Extra == nil {
				opts.Extra = make(map[string]any)
			}
			opts.Extra[key] = CloneValue(value)
		}
		if err != nil {
			return Options{}, err
		}
	}

	return opts, nil
}

// Clone returns a deep copy of o. Flag pointers and nested Extra values are
// never shared with the original.
func (o Options) Clone() Options {
	out := o
	out.PrivateCDN = cloneBool(o.PrivateCDN)
	out.PrivateCdn = cloneBool(o.PrivateCdn)
	out.Secure = cloneBool(o.Secure)
	out.UseComponent = cloneBool(o.UseComponent)
	out.Extra = CloneMap(o.Extra)
	return out
}

// IsZero reports whether no field of o is set.
func (o Options) IsZero() bool {
	return o.CloudName == "" &&
		o.APIKey == "" &&
		o.APISecret == "" &&
		o.PrivateCDN == nil &&
		o.PrivateCdn == nil &&
		o.Secure == nil &&
		o.UseComponent == nil &&
		len(o.Extra) == 0
}

// Bool returns a pointer to v. Handy for building [Options] literals.
func Bool(v bool) *bool {
	return &v
}

// CloneMap deep-copies a decoded option map. Nested maps and slices are
// copied, scalars are shared.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies a single decoded option value.
func CloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return CloneMap(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = CloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(value))
		for i, item := range value {
			out[i] = CloneMap(item)
		}
		return out
	case map[string]string:
		return maps.Clone(value)
	default:
		return value
	}
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func stringOption(key string, value any) (string, error) {
	if value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOptionType, key, value)
	}
	return s, nil
}

func boolOption(key string, value any) (*bool, error) {
	if value == nil {
		return nil, nil
	}
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidOptionType, key, value)
	}
	return &b, nil
}
