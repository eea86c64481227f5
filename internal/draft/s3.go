package draft

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/go-logr/logr"

	"github.com/imamik/stepform/internal/platform/s3"
	"github.com/imamik/stepform/internal/util/retry"
)

// ObjectClient is the subset of the S3 client the backend needs.
type ObjectClient interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	DeleteObject(ctx context.Context, key string) error
}

// S3Backend stores each key as an object under prefix.
type S3Backend struct {
	client    ObjectClient
	prefix    string
	logger    logr.Logger
	retryOpts []retry.Option
}

// S3Option customizes an S3Backend.
type S3Option func(*S3Backend)

// WithS3Logger logs retries of object calls.
func WithS3Logger(l logr.Logger) S3Option {
	return func(b *S3Backend) {
		b.logger = l
	}
}

// WithS3Retry replaces the retry options used for every object call.
func WithS3Retry(opts ...retry.Option) S3Option {
	return func(b *S3Backend) {
		b.retryOpts = opts
	}
}

// NewS3Backend returns a backend storing objects under prefix.
func NewS3Backend(client ObjectClient, prefix string, opts ...S3Option) *S3Backend {
	b := &S3Backend{
		client: client,
		prefix: prefix,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *S3Backend) objectKey(key string) string {
	return path.Join(b.prefix, key+".json")
}

func (b *S3Backend) do(ctx context.Context, op string, fn func(context.Context) error) error {
	opts := append([]retry.Option{retry.WithLogger(b.logger, op)}, b.retryOpts...)
	return retry.Do(ctx, fn, opts...)
}

// Get implements Backend.
func (b *S3Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := b.do(ctx, "s3 get", func(ctx context.Context) error {
		var err error
		data, err = b.client.GetObject(ctx, b.objectKey(key))
		if errors.Is(err, s3.ErrObjectNotFound) {
			return retry.Fatal(err)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}
	return data, nil
}

// Put implements Backend.
func (b *S3Backend) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errEmptyKey
	}
	return b.do(ctx, "s3 put", func(ctx context.Context) error {
		return b.client.PutObject(ctx, b.objectKey(key), value, "application/json")
	})
}

// Delete implements Backend.
func (b *S3Backend) Delete(ctx context.Context, key string) error {
	return b.do(ctx, "s3 delete", func(ctx context.Context) error {
		return b.client.DeleteObject(ctx, b.objectKey(key))
	})
}

// Close implements Backend.
func (b *S3Backend) Close() error { return nil }
