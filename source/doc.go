// Package source provides storage abstraction for the static asset tree.
//
// Source is the interface the resolver probes and reads assets through.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - Local: Local filesystem rooted at a public directory
//   - Memory: In-memory map, intended for tests
//   - RateLimited: Wrapper that bounds probe pressure against remote origins
//   - minio.Source: MinIO and S3-compatible object storage
//   - s3.Source: Amazon S3
//
// # Custom Implementations
//
// Implement the Source interface to support custom storage backends:
//
//	type Source interface {
//	    Exists(ctx, name) (bool, error)  // Probe without reading
//	    ReadFile(ctx, name) ([]byte, error)  // Full contents
//	}
//
// ReadFile must return an error satisfying errors.Is(err, ErrNotFound) when
// the named asset does not exist.
package source
