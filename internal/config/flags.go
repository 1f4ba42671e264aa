package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig       = "config"
	FlagCloudName    = "cloud-name"
	FlagAPIKey       = "api-key"
	FlagAPISecret    = "api-secret"
	FlagSecure       = "secure"
	FlagPrivateCdn   = "private-cdn"
	FlagUseComponent = "use-component"
	FlagOption       = "option"
)

// Flags holds the module options bound to a flag set.
//
// Boolean flags only count when they were given on the command line, so an
// omitted --secure is "not set" rather than false.
type Flags struct {
	fs *pflag.FlagSet

	configPath   string
	cloudName    string
	apiKey       string
	apiSecret    string
	secure       bool
	privateCdn   bool
	useComponent bool
	extra        []string
}

// RegisterFlags binds all module option flags to fs.
//
// Flags:
//
//	-c/--config      host config file (.yaml, .yml, .toml, .json, .jsonc)
//	--cloud-name     Cloudinary cloud name
//	--api-key        Cloudinary API key
//	--api-secret     Cloudinary API secret
//	--secure         deliver over https
//	--private-cdn    deliver from a private CDN
//	--use-component  pass the component flag through to the runtime
//	-o/--option      extra delivery default as key=value, dotted keys nest (repeatable)
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.configPath, FlagConfig, "c", "", "Host config file path")
	fs.StringVar(&f.cloudName, FlagCloudName, "", "Cloudinary cloud name")
	fs.StringVar(&f.apiKey, FlagAPIKey, "", "Cloudinary API key")
	fs.StringVar(&f.apiSecret, FlagAPISecret, "", "Cloudinary API secret")
	fs.BoolVar(&f.secure, FlagSecure, true, "Deliver assets over https")
	fs.BoolVar(&f.privateCdn, FlagPrivateCdn, false, "Deliver assets from a private CDN")
	fs.BoolVar(&f.useComponent, FlagUseComponent, false, "Enable the runtime component")
	fs.StringArrayVarP(&f.extra, FlagOption, "o", nil, "Extra delivery default as key=value (repeatable)")

	return f
}

// ConfigPath returns the --config value.
func (f *Flags) ConfigPath() string {
	return f.configPath
}

func (f *Flags) options() (models.Options, error) {
	opts := models.Options{
		CloudName: f.cloudName,
		APIKey:    f.apiKey,
		APISecret: f.apiSecret,
	}

	if f.fs.Changed(FlagSecure) {
		opts.Secure = models.Bool(f.secure)
	}
	if f.fs.Changed(FlagPrivateCdn) {
		opts.PrivateCdn = models.Bool(f.privateCdn)
	}
	if f.fs.Changed(FlagUseComponent) {
		opts.UseComponent = models.Bool(f.useComponent)
	}

	extra, err := parseExtraOptions(f.extra)
	if err != nil {
		return models.Options{}, err
	}
	opts.Extra = extra

	return opts, nil
}

// parseExtraOptions turns key=value pairs into a nested option map. Values
// are decoded as YAML scalars, so "true" becomes a bool and "80" an int.
func parseExtraOptions(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(map[string]any)
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: need key=value, got %q", ErrInvalidFlagOption, pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		if value == nil {
			value = raw
		}

		if err := setPath(out, strings.Split(key, "."), value); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFlagOption, key, err)
		}
	}

	return out, nil
}

func setPath(m map[string]any, path []string, value any) error {
	for i, part := range path {
		if part == "" {
			return errors.New("empty key segment")
		}
		if i == len(path)-1 {
			m[part] = value
			return nil
		}

		next, exists := m[part]
		if !exists {
			child := make(map[string]any)
			m[part] = child
			m = child
			continue
		}

		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%s is already set to a scalar", part)
		}
		m = child
	}
	return nil
}
