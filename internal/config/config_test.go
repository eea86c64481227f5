package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every STEPFORM_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		EnvDraftBackend, EnvDraftDir, EnvDraftKey, EnvDraftPassphrase,
		EnvSubmitDelay, EnvLogLevel, EnvMetricsTextfile,
		EnvS3AccessKey, EnvS3SecretKey,
	} {
		t.Setenv(v, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	assert.Equal(t, filepath.Join("/var/state", "stepform"), StateDir())

	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/jane")
	assert.Equal(t, filepath.Join("/home/jane", ".local", "state", "stepform"), StateDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_STATE_HOME", "/var/state")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Draft.Backend)
	assert.Equal(t, "/var/state/stepform", cfg.Draft.Dir)
	assert.Equal(t, "formData", cfg.Draft.Key)
	assert.Equal(t, 2*time.Second, cfg.Submit.Delay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/var/state/stepform/stepform.log", cfg.LogFile())
	assert.Equal(t, "/var/state/stepform/drafts.db", cfg.Draft.SQLiteFile())
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
draft:
  backend: sqlite
  dir: /tmp/drafts
  key: signup
  sqlite_path: /tmp/drafts/forms.db
submit:
  delay: 500ms
log:
  level: debug
  file: /tmp/stepform.log
metrics:
  textfile: /tmp/stepform.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Draft.Backend)
	assert.Equal(t, "/tmp/drafts", cfg.Draft.Dir)
	assert.Equal(t, "signup", cfg.Draft.Key)
	assert.Equal(t, "/tmp/drafts/forms.db", cfg.Draft.SQLiteFile())
	assert.Equal(t, 500*time.Millisecond, cfg.Submit.Delay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/stepform.log", cfg.LogFile())
	assert.Equal(t, "/tmp/stepform.prom", cfg.Metrics.Textfile)
	assert.Equal(t, DefaultS3Region, cfg.Draft.S3.Region, "unset keys keep defaults")
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Draft.Backend)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
draft:
  backend: sqlite
submit:
  delay: 1s
`)
	t.Setenv(EnvDraftBackend, "memory")
	t.Setenv(EnvDraftKey, "other")
	t.Setenv(EnvSubmitDelay, "10ms")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvDraftPassphrase, "hunter2")
	t.Setenv(EnvMetricsTextfile, "/tmp/m.prom")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Draft.Backend)
	assert.Equal(t, "other", cfg.Draft.Key)
	assert.Equal(t, 10*time.Millisecond, cfg.Submit.Delay)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "hunter2", cfg.Draft.Passphrase)
	assert.Equal(t, "/tmp/m.prom", cfg.Metrics.Textfile)
}

func TestLoad_InvalidDurationEnvKeepsValue(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSubmitDelay, "soon")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSubmitDelay, cfg.Submit.Delay)
}

func TestLoad_ExpandsHome(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", "/home/jane")
	cfg, err := Load(writeConfig(t, "draft:\n  dir: ~/forms\n"))
	require.NoError(t, err)
	assert.Equal(t, "/home/jane/forms", cfg.Draft.Dir)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unknown key", content: "draft:\n  color: blue\n", wantErr: "failed to unmarshal yaml"},
		{name: "bad yaml", content: "draft: [", wantErr: "failed to unmarshal yaml"},
		{name: "bad delay", content: "submit:\n  delay: soon\n", wantErr: "failed to unmarshal yaml"},
		{name: "unknown backend", content: "draft:\n  backend: redis\n", wantErr: "unknown draft backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
		errText string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Draft.Backend = "redis" },
			wantErr: ErrUnknownBackend,
		},
		{
			name:    "empty key",
			mutate:  func(c *Config) { c.Draft.Key = "" },
			wantErr: ErrMissingSetting,
		},
		{
			name:    "key with separator",
			mutate:  func(c *Config) { c.Draft.Key = "../etc" },
			errText: "path separators",
		},
		{
			name:    "file backend without dir",
			mutate:  func(c *Config) { c.Draft.Dir = "" },
			wantErr: ErrMissingSetting,
		},
		{
			name:    "sqlite without location",
			mutate:  func(c *Config) { c.Draft.Backend = BackendSQLite; c.Draft.Dir = "" },
			wantErr: ErrMissingSetting,
		},
		{
			name:    "s3 without bucket",
			mutate:  func(c *Config) { c.Draft.Backend = BackendS3 },
			wantErr: ErrMissingSetting,
		},
		{
			name: "s3 with half credentials",
			mutate: func(c *Config) {
				c.Draft.Backend = BackendS3
				c.Draft.S3.Bucket = "forms"
				c.Draft.S3.AccessKey = "AKIA"
			},
			wantErr: ErrMissingSetting,
		},
		{
			name: "s3 complete",
			mutate: func(c *Config) {
				c.Draft.Backend = BackendS3
				c.Draft.S3.Bucket = "forms"
			},
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.Submit.Delay = -time.Second },
			errText: "must not be negative",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			errText: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Draft.Dir = "/tmp/stepform"
			tt.mutate(cfg)

			err := cfg.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				assert.ErrorContains(t, err, tt.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogFile(t *testing.T) {
	cfg := Default()
	cfg.Draft.Dir = "/var/state/stepform"
	assert.Equal(t, "/var/state/stepform/stepform.log", cfg.LogFile())

	cfg.Draft.Backend = BackendMemory
	assert.Empty(t, cfg.LogFile(), "memory backend logs nowhere by default")

	cfg.Log.File = "/tmp/stepform.log"
	assert.Equal(t, "/tmp/stepform.log", cfg.LogFile())
}
