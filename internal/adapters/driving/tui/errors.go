package tui

import "errors"

// ErrMissingConnectionService is returned when the app is created without a
// connection service.
var ErrMissingConnectionService = errors.New("connection service is required")
