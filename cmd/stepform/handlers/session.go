package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/imamik/stepform/internal/config"
	"github.com/imamik/stepform/internal/draft"
	"github.com/imamik/stepform/internal/logging"
	"github.com/imamik/stepform/internal/metrics"
	"github.com/imamik/stepform/internal/platform/s3"
)

// Factory function variables for session setup - can be replaced in tests.
var (
	// loadConfig loads the configuration file and environment.
	loadConfig = config.Load

	// newLogger builds the file logger.
	newLogger = logging.New

	// newS3Client connects to the bucket of the s3 draft backend.
	newS3Client = func(ctx context.Context, opts s3.Options) (draft.ObjectClient, error) {
		return s3.NewClient(ctx, opts)
	}
)

// session holds everything a command needs to work with the draft.
type session struct {
	cfg      *config.Config
	logger   logr.Logger
	syncLog  func() error
	store    *draft.Store
	recorder *metrics.Recorder
}

// openSession loads the configuration and opens the draft store. With
// ephemeral set the draft lives in memory and is lost on exit.
func openSession(ctx context.Context, configPath string, ephemeral bool) (*session, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if ephemeral {
		cfg.Draft.Backend = config.BackendMemory
	}

	logger, syncLog := logr.Discard(), func() error { return nil }
	if file := cfg.LogFile(); file != "" {
		logger, syncLog, err = newLogger(logging.Options{Level: cfg.Log.Level, File: file})
		if err != nil {
			return nil, fmt.Errorf("failed to set up logging: %w", err)
		}
	}

	backend, err := newBackend(ctx, cfg.Draft, logger.WithName("draft"))
	if err != nil {
		_ = syncLog()
		return nil, err
	}

	opts := []draft.Option{draft.WithKey(cfg.Draft.Key)}
	if cfg.Draft.Passphrase != "" {
		sealer, err := draft.NewSealer(cfg.Draft.Passphrase)
		if err != nil {
			_ = backend.Close()
			_ = syncLog()
			return nil, fmt.Errorf("failed to set up draft encryption: %w", err)
		}
		opts = append(opts, draft.WithSealer(sealer))
	}

	logger.V(1).Info("session opened", "backend", cfg.Draft.Backend, "key", cfg.Draft.Key)

	return &session{
		cfg:      cfg,
		logger:   logger,
		syncLog:  syncLog,
		store:    draft.New(backend, opts...),
		recorder: metrics.New(),
	}, nil
}

// newBackend creates the draft backend selected in cfg.
func newBackend(ctx context.Context, cfg config.DraftConfig, logger logr.Logger) (draft.Backend, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return draft.NewFileBackend(cfg.Dir)

	case config.BackendSQLite:
		path := cfg.SQLiteFile()
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create draft directory: %w", err)
		}
		return draft.NewSQLiteBackend(ctx, path)

	case config.BackendS3:
		client, err := newS3Client(ctx, s3.Options{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PathStyle: cfg.S3.PathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		return draft.NewS3Backend(client, cfg.S3.Prefix, draft.WithS3Logger(logger)), nil

	case config.BackendMemory:
		return draft.NewMemoryBackend(), nil
	}
	return nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, cfg.Backend)
}

// Close writes the metrics textfile, closes the store and flushes the log.
func (s *session) Close() error {
	var errs []error
	if err := s.recorder.WriteTextfile(s.cfg.Metrics.Textfile); err != nil {
		errs = append(errs, err)
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close draft store: %w", err))
	}
	if err := s.syncLog(); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush log: %w", err))
	}
	return errors.Join(errs...)
}
