// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cloudinary-module/internal/config"
	"github.com/MKhiriev/go-cloudinary-module/internal/logger"
	"github.com/MKhiriev/go-cloudinary-module/models"
)

const appName = "cloudinary-module"

// commandContext carries the state shared by every subcommand.
type commandContext struct {
	flags *config.Flags
	log   *logger.Logger
}

// sources loads the host and user layers from env, flags and the host file.
func (c *commandContext) sources() (*config.Sources, error) {
	return config.LoadSources(c.flags)
}

// resolve loads the sources and resolves them, logging diagnostics.
func (c *commandContext) resolve() (*config.Sources, *models.EffectiveConfig, error) {
	src, err := c.sources()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Resolve(src.Host, src.User, logger.NewDiagnostics(c.log))
	if err != nil {
		return src, nil, err
	}
	return src, cfg, nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{log: logger.NewConsoleLogger(appName)}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Cloudinary module for the host framework",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	ctx.flags = config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newResolveCommand(ctx))
	rootCmd.AddCommand(newGenerateCommand(ctx))
	rootCmd.AddCommand(newPingCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
