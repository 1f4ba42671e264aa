// Package config resolves the Cloudinary module configuration.
//
// Two inputs feed resolution:
//  1. Host options: the "cloudinary" namespace of the host framework config
//     file (YAML, TOML, JSON or JSONC), see [LoadHostConfig].
//  2. Module options: CLOUDINARY_* environment variables overlaid with
//     command-line flags, see [LoadSources].
//
// [Resolver.Resolve] merges them (module options win over host options),
// validates the result and returns an immutable [models.EffectiveConfig]. A
// missing cloudName is reported through the [Reporter] and returned as a
// [*ConfigurationError]; missing credentials only produce a warning.
package config
