// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package plugins renders the runtime plugin files registered by the module.
//
// Each [models.Plugin] names its template through Src; the template is
// looked up by base name in the embedded templates directory and receives
// the plugin options as a JSON literal.
package plugins

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"text/template"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

// Alias is the import alias generated files use to reach the runtime.
const Alias = "~cloudinary"

var (
	ErrUnknownTemplate = errors.New("unknown plugin template")
	ErrNoOptions       = errors.New("plugin has no options")
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.New("plugins").ParseFS(templatesFS, "templates/*.tmpl"))

type templateData struct {
	Alias   string
	Options string
}

// Render returns the generated file content for p.
func Render(p models.Plugin) ([]byte, error) {
	if p.Options == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoOptions, p.FileName)
	}

	name := path.Base(p.Src) + ".tmpl"
	tmpl := templates.Lookup(name)
	if tmpl == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, p.Src)
	}

	options, err := json.MarshalIndent(p.Options, "  ", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding plugin options: %w", err)
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, templateData{Alias: Alias, Options: string(options)}); err != nil {
		return nil, fmt.Errorf("error rendering %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// Templates returns the names of the available plugin sources.
func Templates() []string {
	var names []string
	for _, t := range templates.Templates() {
		if n := t.Name(); path.Ext(n) == ".tmpl" {
			names = append(names, n[:len(n)-len(".tmpl")])
		}
	}
	return names
}
