// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

const secretMask = "********"

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := ctx.resolve()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			fmt.Fprintln(out, renderConfig(cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the configuration as JSON (secrets included)")

	return cmd
}

// renderConfig formats cfg as a two-column table. The API secret is masked.
func renderConfig(cfg *models.EffectiveConfig) string {
	rows := [][]string{
		{models.KeyCloudName, cfg.CloudName()},
		{models.KeyAPIKey, cfg.APIKey()},
		{models.KeyAPISecret, maskSecret(cfg.APISecret())},
		{models.KeyPrivateCdn, strconv.FormatBool(cfg.PrivateCdn())},
		{models.KeySecure, strconv.FormatBool(cfg.Secure())},
	}
	if uc := cfg.UseComponent(); uc != nil {
		rows = append(rows, []string{models.KeyUseComponent, strconv.FormatBool(*uc)})
	}

	extra := cfg.Extra()
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, []string{k, formatValue(extra[k])})
	}

	return renderTable([]string{"Option", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return secretMask
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}
