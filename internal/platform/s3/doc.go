// Package s3 provides a bucket-scoped client for S3-compatible object storage.
//
// The draft store uses it to keep one object per draft key. Missing objects
// are reported as ErrObjectNotFound so callers can tell "no draft yet" apart
// from transport failures.
package s3
