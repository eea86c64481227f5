// Package draft persists the in-progress form record between runs.
//
// A Store serializes form.Data as JSON under a single key of a Backend and
// replaces it on every save; there is no merging and no versioning. Backends
// are a directory of files (the default), a SQLite key/value table, an S3
// bucket or process memory. An optional Sealer encrypts the payload before it
// reaches the backend.
package draft
