// Package retry provides exponential backoff retry logic for transient failures.
//
// [Do] retries an operation with configurable max attempts, initial delay
// and maximum delay. Remote draft backends wrap every call in it. Errors
// marked with [Fatal] stop the loop immediately.
package retry
