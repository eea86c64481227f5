// Package config loads the stepform configuration.
//
// Values come from three layers, later layers winning: built-in defaults,
// an optional YAML file and STEPFORM_* environment variables. Secrets (S3
// keys, the draft passphrase) are only read from the environment.
package config
