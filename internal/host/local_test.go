// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

func testConfig() *models.EffectiveConfig {
	return models.NewEffectiveConfig(models.EffectiveConfigParams{CloudName: "acme", Secure: true})
}

func testPlugin(mode models.PluginMode) models.Plugin {
	name := "plugin." + string(mode) + ".js"
	return models.Plugin{
		Src:      "@nuxtjs/cloudinary/runtime/" + name,
		FileName: "cloudinary/" + name,
		Mode:     mode,
		Options:  testConfig(),
	}
}

// ── Config ───────────────────────────────────────────────────────────────────

func TestLocal_ConfigIsACopy(t *testing.T) {
	hostCfg := models.Options{CloudName: "acme", Secure: models.Bool(true)}
	l := NewLocal(hostCfg)

	got := l.Config()
	*got.Secure = false

	assert.Equal(t, "acme", l.Config().CloudName)
	assert.True(t, *l.Config().Secure)
	assert.True(t, *hostCfg.Secure)
}

// ── AddPlugin ────────────────────────────────────────────────────────────────

func TestLocal_AddPlugin(t *testing.T) {
	l := NewLocal(models.Options{})

	require.NoError(t, l.AddPlugin(testPlugin(models.PluginModeServer)))
	require.NoError(t, l.AddPlugin(testPlugin(models.PluginModeClient)))

	got := l.Plugins()
	require.Len(t, got, 2)
	assert.Equal(t, models.PluginModeServer, got[0].Mode)
	assert.Equal(t, models.PluginModeClient, got[1].Mode)
}

func TestLocal_AddPlugin_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *models.Plugin)
	}{
		{name: "no file name", mutate: func(p *models.Plugin) { p.FileName = "" }},
		{name: "no src", mutate: func(p *models.Plugin) { p.Src = "" }},
		{name: "bad mode", mutate: func(p *models.Plugin) { p.Mode = "edge" }},
		{name: "no options", mutate: func(p *models.Plugin) { p.Options = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlugin(models.PluginModeServer)
			tt.mutate(&p)

			err := NewLocal(models.Options{}).AddPlugin(p)
			assert.ErrorIs(t, err, ErrInvalidPlugin)
		})
	}
}

func TestLocal_AddPlugin_Duplicate(t *testing.T) {
	l := NewLocal(models.Options{})
	require.NoError(t, l.AddPlugin(testPlugin(models.PluginModeServer)))

	err := l.AddPlugin(testPlugin(models.PluginModeServer))
	assert.ErrorIs(t, err, ErrDuplicatePlugin)
	assert.Len(t, l.Plugins(), 1)
}

// ── RunExtend ────────────────────────────────────────────────────────────────

func TestLocal_RunExtend_NoHook(t *testing.T) {
	cfg := NewLocal(models.Options{}).RunExtend(BuildContext{IsClient: true})
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Node)
}

func TestLocal_RunExtend_CallsHook(t *testing.T) {
	l := NewLocal(models.Options{})
	var seen BuildContext
	l.Build().Extend = func(cfg *BundlerConfig, ctx BuildContext) {
		seen = ctx
		cfg.Node["path"] = "mock"
	}

	cfg := l.RunExtend(BuildContext{IsServer: true})
	assert.True(t, seen.IsServer)
	assert.Equal(t, "mock", cfg.Node["path"])
}

// ── Render ───────────────────────────────────────────────────────────────────

func TestLocal_Render(t *testing.T) {
	l := NewLocal(models.Options{})
	require.NoError(t, l.AddPlugin(testPlugin(models.PluginModeServer)))
	require.NoError(t, l.AddPlugin(testPlugin(models.PluginModeClient)))

	dir := t.TempDir()
	written, err := l.Render(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "cloudinary", "plugin.server.js"),
		filepath.Join(dir, "cloudinary", "plugin.client.js"),
	}, written)

	for _, path := range written {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"cloudName": "acme"`)
	}
}

func TestLocal_Render_Locked(t *testing.T) {
	dir := t.TempDir()
	held := flock.New(filepath.Join(dir, lockFileName))
	require.NoError(t, held.Lock())
	defer func() { _ = held.Unlock() }()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, err := NewLocal(models.Options{}).Render(ctx, dir)
	assert.Error(t, err)
}

// ── Middleware ───────────────────────────────────────────────────────────────

func TestLocal_RouterInjectsProvidedValues(t *testing.T) {
	l := NewLocal(models.Options{})
	l.Provide("$cloudinary", "client")

	var got any
	var ok bool
	r := l.Router()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		got, ok = FromContext(req.Context(), "$cloudinary")
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, ok)
	assert.Equal(t, "client", got)
}

func TestFromContext_Missing(t *testing.T) {
	v, ok := FromContext(context.Background(), "$cloudinary")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestLocal_Provided(t *testing.T) {
	l := NewLocal(models.Options{})
	_, ok := l.Provided("$cloudinary")
	assert.False(t, ok)

	l.Provide("$cloudinary", 1)
	v, ok := l.Provided("$cloudinary")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
