package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cloudinary-module/models"
)

const (
	defaultAPIBaseURL = "https://api.cloudinary.com/v1_1"
	defaultTimeout    = 15 * time.Second
)

// ServerAPI is the Cloudinary client exposed to server-side rendering. It
// embeds [ClientAPI] and adds calls to the Admin API.
type ServerAPI struct {
	*ClientAPI

	client *resty.Client
}

// Option customizes a ServerAPI.
type Option func(*serverOptions)

type serverOptions struct {
	baseURL string
	timeout time.Duration
}

// WithBaseURL points the Admin API client at baseURL instead of
// https://api.cloudinary.com/v1_1.
func WithBaseURL(baseURL string) Option {
	return func(o *serverOptions) { o.baseURL = baseURL }
}

// WithTimeout sets the Admin API request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *serverOptions) { o.timeout = d }
}

// NewServerAPI returns a ServerAPI bound to cfg. Credentials, when present,
// are attached as basic auth to every Admin API request.
func NewServerAPI(cfg *models.EffectiveConfig, opts ...Option) *ServerAPI {
	o := serverOptions{baseURL: defaultAPIBaseURL, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		o.timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(o.baseURL, "/") + "/" + cfg.CloudName()).
		SetTimeout(o.timeout)
	if cfg.HasCredentials() {
		cli.SetBasicAuth(cfg.APIKey(), cfg.APISecret())
	}

	return &ServerAPI{
		ClientAPI: NewClientAPI(cfg),
		client:    cli,
	}
}

// Client returns the browser-side view of s.
func (s *ServerAPI) Client() *ClientAPI {
	return s.ClientAPI
}

type pingResponse struct {
	Status string `json:"status"`
}

// Ping checks that the account is reachable and the credentials are valid.
func (s *ServerAPI) Ping(ctx context.Context) error {
	if !s.cfg.HasCredentials() {
		return ErrMissingCredentials
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var pr pingResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return fmt.Errorf("decode ping response: %w", err)
	}
	if pr.Status != "ok" {
		return fmt.Errorf("%w: unexpected ping status %q", ErrServer, pr.Status)
	}

	return nil
}
