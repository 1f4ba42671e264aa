// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cloudinary-module/internal/media"
)

func newPingCommand(ctx *commandContext) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the configured account is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := ctx.resolve()
			if err != nil {
				return err
			}

			opts := []media.Option{media.WithTimeout(timeout)}
			if baseURL != "" {
				opts = append(opts, media.WithBaseURL(baseURL))
			}

			if err = media.NewServerAPI(cfg, opts...).Ping(cmd.Context()); err != nil {
				return fmt.Errorf("ping %s: %w", cfg.CloudName(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", cfg.CloudName())
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Admin API base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	return cmd
}
