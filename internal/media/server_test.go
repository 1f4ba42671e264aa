// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

func newTestServerAPI(t *testing.T, serverURL string, withCredentials bool) *ServerAPI {
	t.Helper()
	params := models.EffectiveConfigParams{CloudName: "acme", Secure: true}
	if withCredentials {
		params.APIKey = "key"
		params.APISecret = "secret"
	}
	return NewServerAPI(models.NewEffectiveConfig(params), WithBaseURL(serverURL))
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/acme/ping", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	s := newTestServerAPI(t, srv.URL, true)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPing_MissingCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := newTestServerAPI(t, srv.URL, false)
	err := s.Ping(context.Background())

	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.False(t, called, "no request must be sent without credentials")
}

func TestPing_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "rate limited 420", status: 420, wantErr: ErrRateLimited},
		{name: "rate limited 429", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrServer},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer srv.Close()

			err := newTestServerAPI(t, srv.URL, true).Ping(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPing_UnexpectedStatusField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))
	defer srv.Close()

	err := newTestServerAPI(t, srv.URL, true).Ping(context.Background())
	assert.ErrorIs(t, err, ErrServer)
}

func TestPing_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	err := newTestServerAPI(t, srv.URL, true).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode ping response")
}

func TestPing_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestServerAPI(t, srv.URL, true).Ping(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServerAPI_ClientView(t *testing.T) {
	s := newTestServerAPI(t, "http://localhost", false)
	require.NotNil(t, s.Client())
	assert.Same(t, s.Config(), s.Client().Config())
	assert.Equal(t, "res.cloudinary.com", s.DeliveryHost())
}
