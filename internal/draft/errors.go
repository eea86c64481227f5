package draft

import "errors"

var (
	// ErrNotFound is returned by a Backend when the key holds no value.
	ErrNotFound = errors.New("draft not found")

	// ErrCorrupt is returned by Store.Load when the stored bytes cannot be
	// decoded into a form record.
	ErrCorrupt = errors.New("draft is corrupt")

	// ErrSealed is returned when a sealed draft cannot be opened with the
	// configured passphrase, or a sealed draft is read without one.
	ErrSealed = errors.New("draft cannot be unsealed")

	errEmptyKey = errors.New("draft key is required")
)
