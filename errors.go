package assetgo

import (
	"fmt"

	"github.com/hupe1980/assetgo/model"
	"github.com/hupe1980/assetgo/source"
)

// ErrNotFound is returned when no image exists for an entity (and the
// placeholder fallback is disabled). It aliases source.ErrNotFound so a
// single errors.Is check covers both resolver and source layers.
//
// A missing image is an expected outcome ("not yet uploaded"), not a fault;
// callers should branch on it rather than log it as an error.
var ErrNotFound = source.ErrNotFound

// ErrInvalidSize indicates a size variant outside the closed thumb/medium/full set.
type ErrInvalidSize struct {
	Size model.SizeVariant
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size variant: %q", string(e.Size))
}

// ErrInvalidEntityType indicates an entity type outside the closed set.
type ErrInvalidEntityType struct {
	Type model.EntityType
}

func (e *ErrInvalidEntityType) Error() string {
	return fmt.Sprintf("invalid entity type: %q", string(e.Type))
}
