// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cloudinary-module/internal/host"
	"github.com/MKhiriev/go-cloudinary-module/internal/module"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Install the module into a local build and write the plugin files",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(outDir)
			if target == "" {
				return errors.New("--out is required")
			}

			src, err := ctx.sources()
			if err != nil {
				return err
			}

			fw := host.NewLocal(src.Host)
			if _, err = module.Setup(fw, src.User, module.WithLogger(ctx.log)); err != nil {
				return err
			}

			written, err := fw.Render(cmd.Context(), target)
			if err != nil {
				return fmt.Errorf("render plugins: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, p := range written {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Build directory the plugin files are written to")

	return cmd
}
