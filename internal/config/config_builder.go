package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

// Sources holds the two inputs of resolution as read from the outside world.
type Sources struct {
	// Host is the cloudinary namespace of the host framework config.
	Host models.Options
	// User is the per-invocation module options (env overlaid with flags).
	User models.Options
	// HostConfigPath is the host config file Host was read from, if any.
	HostConfigPath string
}

// LoadSources collects the resolution inputs in the following order (later
// layers override earlier ones field by field):
//  1. CLOUDINARY_* environment variables
//  2. Command-line flags
//
// The host config file path comes from CLOUDINARY_CONFIG or --config, the
// flag winning when both are set.
func LoadSources(flags *Flags) (*Sources, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withHostFile().
		build()
}

type configBuilder struct {
	layers     []models.Options
	configPath string
	host       models.Options
	err        error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]models.Options, 0, 2),
	}
}

func (b *configBuilder) build() (*Sources, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	var user models.Options
	for _, layer := range b.layers {
		merged, err := overlay(user, layer)
		if err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		user = merged
	}

	return &Sources{
		Host:           b.host,
		User:           user,
		HostConfigPath: b.configPath,
	}, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	var envCfg envOptions
	if err := parseEnv(&envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	opts, err := envCfg.options()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if envCfg.ConfigPath != "" {
		b.configPath = envCfg.ConfigPath
	}
	b.layers = append(b.layers, opts)
	return b
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}

	opts, err := flags.options()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if flags.ConfigPath() != "" {
		b.configPath = flags.ConfigPath()
	}
	b.layers = append(b.layers, opts)
	return b
}

func (b *configBuilder) withHostFile() *configBuilder {
	if b.configPath == "" {
		return b
	}

	host, err := LoadHostConfig(b.configPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.host = host
	return b
}
