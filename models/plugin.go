// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PluginMode tells the host framework in which runtime a plugin runs.
type PluginMode string

const (
	// PluginModeServer plugins run during server-side rendering only.
	PluginModeServer PluginMode = "server"
	// PluginModeClient plugins run in the browser only.
	PluginModeClient PluginMode = "client"
)

// Plugin is a runtime registration entry handed to the host framework.
//
// Src names the template the generated file is rendered from, FileName is
// the output path relative to the host build directory.
type Plugin struct {
	Src      string
	FileName string
	Mode     PluginMode
	Options  *EffectiveConfig
}
