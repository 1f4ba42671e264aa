package host

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/flock"

	"github.com/MKhiriev/go-cloudinary-module/internal/plugins"
	"github.com/MKhiriev/go-cloudinary-module/models"
)

const (
	lockFileName = ".cloudinary.lock"
	lockRetry    = 100 * time.Millisecond
)

type contextKey string

// Local is an in-process [Framework]. It is safe for concurrent use.
type Local struct {
	mu       sync.RWMutex
	config   models.Options
	build    BuildOptions
	alias    map[string]string
	plugins  []models.Plugin
	provided map[string]any
}

// NewLocal returns a Local whose module namespace is hostConfig.
func NewLocal(hostConfig models.Options) *Local {
	return &Local{
		config:   hostConfig.Clone(),
		alias:    make(map[string]string),
		provided: make(map[string]any),
	}
}

func (l *Local) Config() models.Options {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config.Clone()
}

func (l *Local) Build() *BuildOptions {
	return &l.build
}

func (l *Local) Alias() map[string]string {
	return l.alias
}

// AddPlugin registers p. File names must be unique.
func (l *Local) AddPlugin(p models.Plugin) error {
	if p.FileName == "" || p.Src == "" {
		return fmt.Errorf("%w: src and file name are required", ErrInvalidPlugin)
	}
	if p.Mode != models.PluginModeServer && p.Mode != models.PluginModeClient {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidPlugin, p.Mode)
	}
	if p.Options == nil {
		return fmt.Errorf("%w: %s has no options", ErrInvalidPlugin, p.FileName)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, registered := range l.plugins {
		if registered.FileName == p.FileName {
			return fmt.Errorf("%w: %s", ErrDuplicatePlugin, p.FileName)
		}
	}
	l.plugins = append(l.plugins, p)
	return nil
}

func (l *Local) Provide(key string, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.provided[key] = value
}

// Plugins returns the registered plugins in registration order.
func (l *Local) Plugins() []models.Plugin {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.plugins)
}

// Provided returns the value provided under key.
func (l *Local) Provided(key string) (any, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.provided[key]
	return v, ok
}

// RunExtend runs the extend hook chain for one bundle and returns the
// resulting bundler configuration.
func (l *Local) RunExtend(ctx BuildContext) *BundlerConfig {
	cfg := &BundlerConfig{Node: make(map[string]string)}
	if l.build.Extend != nil {
		l.build.Extend(cfg, ctx)
	}
	return cfg
}

// Render writes every registered plugin below dir and returns the written
// paths. A file lock on dir keeps concurrent builds from interleaving.
func (l *Local) Render(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating build directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("error acquiring build lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	registered := l.Plugins()
	written := make([]string, 0, len(registered))
	for _, p := range registered {
		content, err := plugins.Render(p)
		if err != nil {
			return written, err
		}

		target := filepath.Join(dir, filepath.FromSlash(p.FileName))
		if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("error creating plugin directory: %w", err)
		}
		if err = os.WriteFile(target, content, 0o644); err != nil {
			return written, fmt.Errorf("error writing plugin %s: %w", p.FileName, err)
		}
		written = append(written, target)
	}

	return written, nil
}

// Middleware injects every provided value into the request context.
func (l *Local) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		l.mu.RLock()
		for key, value := range l.provided {
			ctx = context.WithValue(ctx, contextKey(key), value)
		}
		l.mu.RUnlock()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Router returns a chi router with [Local.Middleware] installed. It stands
// for the server-side rendering entry point of the host.
func (l *Local) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(l.Middleware)
	return r
}

// FromContext returns the value provided under key for the current request.
func FromContext(ctx context.Context, key string) (any, bool) {
	v := ctx.Value(contextKey(key))
	return v, v != nil
}
