package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete stepform configuration.
type Config struct {
	Draft   DraftConfig   `yaml:"draft"`
	Submit  SubmitConfig  `yaml:"submit"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// DraftConfig selects where the in-progress record is kept.
type DraftConfig struct {
	Backend    string   `yaml:"backend"`
	Dir        string   `yaml:"dir"`
	Key        string   `yaml:"key"`
	SQLitePath string   `yaml:"sqlite_path"`
	S3         S3Config `yaml:"s3"`

	// Passphrase enables sealing of drafts at rest.
	Passphrase string `yaml:"-"`
}

// S3Config locates the bucket used by the s3 backend.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`

	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// SubmitConfig tunes the simulated submission.
type SubmitConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	dir := StateDir()
	return &Config{
		Draft: DraftConfig{
			Backend: BackendFile,
			Dir:     dir,
			Key:     DefaultDraftKey,
			S3: S3Config{
				Region: DefaultS3Region,
				Prefix: DefaultS3Prefix,
			},
		},
		Submit: SubmitConfig{Delay: DefaultSubmitDelay},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// StateDir returns $XDG_STATE_HOME/stepform, falling back to
// ~/.local/state/stepform.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDir)
	}
	return filepath.Join(home, ".local", "state", appDir)
}

// SQLiteFile returns the database file, defaulting to one inside Dir.
func (d DraftConfig) SQLiteFile() string {
	if d.SQLitePath != "" {
		return d.SQLitePath
	}
	return filepath.Join(d.Dir, sqliteFileName)
}

// LogFile returns the log destination, defaulting to a file next to the
// drafts. With the memory backend and no explicit file it returns "", and
// nothing is logged.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	if c.Draft.Backend == BackendMemory {
		return ""
	}
	return filepath.Join(c.Draft.Dir, logFileName)
}
