package media

import "errors"

var (
	// ErrMissingCredentials is returned by signed Admin API calls when the
	// config has no apiKey/apiSecret pair.
	ErrMissingCredentials = errors.New("cloudinary api key and secret are required")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("cloudinary server error")
)
