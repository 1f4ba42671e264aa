// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package module is the entry point the host framework invokes once per
// build to install Cloudinary support.
//
// [Setup] resolves the configuration first. Only when resolution succeeds
// does it touch the framework: the bundler extend hook is wrapped, the
// server-side client is provided to the request context, the runtime is
// aliased and transpiled, and one server and one client plugin are
// registered, both carrying the same immutable config.
package module

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-cloudinary-module/internal/config"
	"github.com/MKhiriev/go-cloudinary-module/internal/host"
	"github.com/MKhiriev/go-cloudinary-module/internal/logger"
	"github.com/MKhiriev/go-cloudinary-module/internal/media"
	"github.com/MKhiriev/go-cloudinary-module/internal/plugins"
	"github.com/MKhiriev/go-cloudinary-module/models"
)

const (
	// PackageName is the runtime package transpiled by the host.
	PackageName = "@nuxtjs/cloudinary"
	// RuntimeDir is where the runtime plugin sources live.
	RuntimeDir = PackageName + "/runtime"
	// AliasKey resolves to RuntimeDir in the host module resolution.
	AliasKey = plugins.Alias
	// ContextKey is the server request context key of the *media.ServerAPI.
	ContextKey = "$cloudinary"

	ServerPluginFile = "cloudinary/plugin.server.js"
	ClientPluginFile = "cloudinary/plugin.client.js"
)

// Result describes a successful setup.
type Result struct {
	// BuildID identifies this setup invocation in logs.
	BuildID string
	Config  *models.EffectiveConfig
	Server  *media.ServerAPI
}

// Option customizes [Setup].
type Option func(*setupOptions)

type setupOptions struct {
	log        *logger.Logger
	reporter   config.Reporter
	serverOpts []media.Option
	runtimeDir string
}

// WithLogger sets the logger used for setup progress and, unless
// [WithReporter] is given, for configuration diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(o *setupOptions) { o.log = l }
}

// WithReporter routes configuration diagnostics to r.
func WithReporter(r config.Reporter) Option {
	return func(o *setupOptions) { o.reporter = r }
}

// WithServerOptions passes opts to the server-side client constructor.
func WithServerOptions(opts ...media.Option) Option {
	return func(o *setupOptions) { o.serverOpts = append(o.serverOpts, opts...) }
}

// WithRuntimeDir overrides [RuntimeDir].
func WithRuntimeDir(dir string) Option {
	return func(o *setupOptions) { o.runtimeDir = dir }
}

// Setup installs the module into fw using the module options userOptions.
//
// A *config.ConfigurationError is returned when the configuration cannot be
// resolved; in that case fw is left untouched and the host build is
// expected to continue without Cloudinary support.
func Setup(fw host.Framework, userOptions models.Options, opts ...Option) (*Result, error) {
	o := setupOptions{log: logger.Nop(), runtimeDir: RuntimeDir}
	for _, opt := range opts {
		opt(&o)
	}

	buildID := uuid.NewString()
	log := o.log.WithBuildID(buildID)
	reporter := o.reporter
	if reporter == nil {
		reporter = logger.NewDiagnostics(log)
	}

	cfg, err := config.NewResolver(reporter).Resolve(fw.Config(), userOptions)
	if err != nil {
		log.Debug().Err(err).Msg("cloudinary setup skipped")
		return nil, err
	}

	build := fw.Build()
	build.Extend = wrapExtend(build.Extend)

	server := media.NewServerAPI(cfg, o.serverOpts...)

	fw.Alias()[AliasKey] = o.runtimeDir
	build.Transpile = append(build.Transpile, o.runtimeDir, PackageName)

	for _, p := range runtimePlugins(o.runtimeDir, cfg) {
		if err = fw.AddPlugin(p); err != nil {
			return nil, fmt.Errorf("error registering %s plugin: %w", p.Mode, err)
		}
	}

	fw.Provide(ContextKey, server)

	log.Info().
		Str("cloud_name", cfg.CloudName()).
		Bool("secure", cfg.Secure()).
		Bool("private_cdn", cfg.PrivateCdn()).
		Msg("cloudinary module installed")

	return &Result{BuildID: buildID, Config: cfg, Server: server}, nil
}

// wrapExtend returns a hook that stubs out the fs module for client bundles
// and then delegates to previous, if any.
func wrapExtend(previous host.ExtendFunc) host.ExtendFunc {
	return func(cfg *host.BundlerConfig, ctx host.BuildContext) {
		if ctx.IsClient {
			if cfg.Node == nil {
				cfg.Node = make(map[string]string)
			}
			cfg.Node["fs"] = "empty"
		}

		if previous != nil {
			previous(cfg, ctx)
		}
	}
}

func runtimePlugins(runtimeDir string, cfg *models.EffectiveConfig) []models.Plugin {
	return []models.Plugin{
		{
			Src:      runtimeDir + "/plugin.server.js",
			FileName: ServerPluginFile,
			Mode:     models.PluginModeServer,
			Options:  cfg,
		},
		{
			Src:      runtimeDir + "/plugin.client.js",
			FileName: ClientPluginFile,
			Mode:     models.PluginModeClient,
			Options:  cfg,
		},
	}
}

// ServerAPIFromContext returns the server-side client provided by [Setup]
// for the current request.
func ServerAPIFromContext(ctx context.Context) (*media.ServerAPI, bool) {
	v, ok := host.FromContext(ctx, ContextKey)
	if !ok {
		return nil, false
	}
	server, ok := v.(*media.ServerAPI)
	return server, ok
}
