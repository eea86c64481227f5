package config

import "errors"

var (
	// ErrUnknownBackend is returned for a draft backend that does not exist.
	ErrUnknownBackend = errors.New("unknown draft backend")

	// ErrMissingSetting is returned when the chosen backend lacks a
	// required setting.
	ErrMissingSetting = errors.New("missing required setting")
)
