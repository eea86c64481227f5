package config

import (
	"fmt"
	"strings"

	"github.com/imamik/stepform/internal/logging"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.validateDraft(); err != nil {
		return fmt.Errorf("draft: %w", err)
	}

	if c.Submit.Delay < 0 {
		return fmt.Errorf("submit.delay must not be negative, got %s", c.Submit.Delay)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

func (c *Config) validateDraft() error {
	d := c.Draft
	if !validBackends[d.Backend] {
		return fmt.Errorf("%w %q (valid: file, sqlite, s3, memory)", ErrUnknownBackend, d.Backend)
	}

	if d.Key == "" {
		return fmt.Errorf("%w: key", ErrMissingSetting)
	}
	if strings.ContainsAny(d.Key, `/\`) || d.Key == "." || d.Key == ".." {
		return fmt.Errorf("key %q must not contain path separators", d.Key)
	}

	switch d.Backend {
	case BackendFile:
		if d.Dir == "" {
			return fmt.Errorf("%w: dir", ErrMissingSetting)
		}
	case BackendSQLite:
		if d.SQLitePath == "" && d.Dir == "" {
			return fmt.Errorf("%w: sqlite_path", ErrMissingSetting)
		}
	case BackendS3:
		if d.S3.Bucket == "" {
			return fmt.Errorf("%w: s3.bucket", ErrMissingSetting)
		}
		if (d.S3.AccessKey == "") != (d.S3.SecretKey == "") {
			return fmt.Errorf("%w: both %s and %s must be set", ErrMissingSetting, EnvS3AccessKey, EnvS3SecretKey)
		}
	}
	return nil
}
