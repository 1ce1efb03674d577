package source

import (
	"context"
	"os"
)

// ErrNotFound is returned when an asset does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source is an abstraction for probing and reading static assets.
type Source interface {
	// Exists reports whether the named asset exists without reading it.
	Exists(ctx context.Context, name string) (bool, error)
	// ReadFile returns the full contents of the named asset.
	ReadFile(ctx context.Context, name string) ([]byte, error)
}
