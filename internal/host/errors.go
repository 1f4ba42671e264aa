package host

import "errors"

var (
	ErrInvalidPlugin   = errors.New("invalid plugin")
	ErrDuplicatePlugin = errors.New("plugin already registered")
	ErrLocked          = errors.New("build directory is locked by another process")
)
