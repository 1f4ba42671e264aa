// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host describes the web framework the module plugs into.
//
// The module only talks to the framework through [Framework]: it reads the
// host-level cloudinary namespace, wraps the bundler extend hook, registers
// path aliases, transpile entries and runtime plugins, and provides values
// to the server-side request context. [Local] is an in-process
// implementation used by the CLI and tests; it renders registered plugins
// to disk and exposes provided values through chi middleware.
package host

import (
	"github.com/MKhiriev/go-cloudinary-module/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/framework_mock.go -package=mock

// Framework is the plugin-lifecycle surface of the host framework.
type Framework interface {
	// Config returns the module namespace of the host configuration. It may
	// be empty.
	Config() models.Options

	// Build returns the mutable build options. Callers may replace Extend
	// and append to Transpile.
	Build() *BuildOptions

	// Alias returns the mutable module-resolution alias table.
	Alias() map[string]string

	// AddPlugin registers a runtime plugin to be generated into the build.
	AddPlugin(p models.Plugin) error

	// Provide exposes value to the server-side request context under key.
	Provide(key string, value any)
}

// BuildContext describes the bundle an extend hook is invoked for.
type BuildContext struct {
	IsClient bool
	IsServer bool
}

// BundlerConfig is the part of the bundler configuration extend hooks may
// change.
type BundlerConfig struct {
	// Node maps node core modules to a polyfill strategy ("empty", "mock").
	Node map[string]string
}

// ExtendFunc customizes the bundler configuration for one bundle.
type ExtendFunc func(cfg *BundlerConfig, ctx BuildContext)

// BuildOptions holds the build hooks and settings modules may extend.
type BuildOptions struct {
	// Extend is invoked once per bundle. nil means no hook.
	Extend ExtendFunc
	// Transpile lists paths and packages compiled by the host pipeline
	// instead of being treated as pre-built.
	Transpile []string
}
