package config

import "time"

// Draft backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendS3     = "s3"
	BackendMemory = "memory"
)

// Defaults.
const (
	DefaultDraftKey    = "formData"
	DefaultSubmitDelay = 2 * time.Second
	DefaultLogLevel    = "info"
	DefaultS3Region    = "us-east-1"
	DefaultS3Prefix    = "stepform/drafts"

	appDir         = "stepform"
	sqliteFileName = "drafts.db"
	logFileName    = "stepform.log"
)

// Environment variables.
const (
	EnvDraftBackend    = "STEPFORM_DRAFT_BACKEND"
	EnvDraftDir        = "STEPFORM_DRAFT_DIR"
	EnvDraftKey        = "STEPFORM_DRAFT_KEY"
	EnvDraftPassphrase = "STEPFORM_DRAFT_PASSPHRASE"
	EnvSubmitDelay     = "STEPFORM_SUBMIT_DELAY"
	EnvLogLevel        = "STEPFORM_LOG_LEVEL"
	EnvMetricsTextfile = "STEPFORM_METRICS_TEXTFILE"
	EnvS3AccessKey     = "STEPFORM_S3_ACCESS_KEY"
	EnvS3SecretKey     = "STEPFORM_S3_SECRET_KEY"
)

var validBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendS3:     true,
	BackendMemory: true,
}
