// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

//go:generate mockgen -source=reporter.go -destination=../mock/reporter_mock.go -package=mock

// Reporter receives the human-readable diagnostics emitted while resolving
// the configuration. Error is used for fatal problems, Warn for advisory
// ones; neither is expected to stop the process.
type Reporter interface {
	Error(msg string)
	Warn(msg string)
}

// DocsURL is referenced by every diagnostic the resolver emits.
const DocsURL = "https://cloudinary.com/documentation/how_to_integrate_cloudinary"

var fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

func highlight(field string) string {
	return fieldStyle.Render(field)
}

func missingCloudNameMessage() string {
	return fmt.Sprintf("You need to provide %s to set up Cloudinary. See %s for more info.",
		highlight("cloudName"), DocsURL)
}

func missingCredentialsMessage() string {
	return fmt.Sprintf("%s and %s will be needed to set up upload to Cloudinary on build and hook. See %s for more info.",
		highlight("apiKey"), highlight("apiSecret"), DocsURL)
}

type nopReporter struct{}

func (nopReporter) Error(string) {}
func (nopReporter) Warn(string)  {}
