package config

import (
	"os"
	"time"
)

// ApplyEnv overrides c with any STEPFORM_* environment variables that are
// set. Unset or unparsable values keep the current setting.
//
// Environment Variables:
//   - STEPFORM_DRAFT_BACKEND
//   - STEPFORM_DRAFT_DIR
//   - STEPFORM_DRAFT_KEY
//   - STEPFORM_DRAFT_PASSPHRASE
//   - STEPFORM_SUBMIT_DELAY (e.g. 500ms)
//   - STEPFORM_LOG_LEVEL
//   - STEPFORM_METRICS_TEXTFILE
//   - STEPFORM_S3_ACCESS_KEY
//   - STEPFORM_S3_SECRET_KEY
func (c *Config) ApplyEnv() {
	c.Draft.Backend = parseString(EnvDraftBackend, c.Draft.Backend)
	c.Draft.Dir = parseString(EnvDraftDir, c.Draft.Dir)
	c.Draft.Key = parseString(EnvDraftKey, c.Draft.Key)
	c.Draft.Passphrase = parseString(EnvDraftPassphrase, c.Draft.Passphrase)
	c.Draft.S3.AccessKey = parseString(EnvS3AccessKey, c.Draft.S3.AccessKey)
	c.Draft.S3.SecretKey = parseString(EnvS3SecretKey, c.Draft.S3.SecretKey)
	c.Submit.Delay = parseDuration(EnvSubmitDelay, c.Submit.Delay)
	c.Log.Level = parseString(EnvLogLevel, c.Log.Level)
	c.Metrics.Textfile = parseString(EnvMetricsTextfile, c.Metrics.Textfile)
}

// parseString returns the environment variable, or defaultVal when unset.
func parseString(envVar, defaultVal string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return defaultVal
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
