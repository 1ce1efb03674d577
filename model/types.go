package model

import (
	"fmt"
)

// EntityType identifies a kind of catalog object whose images are organized
// under a per-type directory (e.g. images/items/...).
type EntityType string

const (
	EntityTypeItem     EntityType = "item"
	EntityTypeVillager EntityType = "villager"
)

// Valid reports whether t is a member of the closed entity type set.
func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeItem, EntityTypeVillager:
		return true
	}
	return false
}

// String returns the tag used in paths and URLs.
func (t EntityType) String() string {
	return string(t)
}

// ParseEntityType converts a raw tag into an EntityType.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown entity type: %q", s)
	}
	return t, nil
}

// SizeVariant selects which rendition's URL is requested. Existence on disk
// is always validated against SizeFull; thumb and medium renditions are
// assumed to be generated from the full image.
type SizeVariant string

const (
	SizeThumb  SizeVariant = "thumb"
	SizeMedium SizeVariant = "medium"
	SizeFull   SizeVariant = "full"
)

// Valid reports whether v is a member of the closed size variant set.
func (v SizeVariant) Valid() bool {
	switch v {
	case SizeThumb, SizeMedium, SizeFull:
		return true
	}
	return false
}

// String returns the tag used in paths and URLs.
func (v SizeVariant) String() string {
	return string(v)
}

// ParseSizeVariant converts a raw tag into a SizeVariant.
func ParseSizeVariant(s string) (SizeVariant, error) {
	v := SizeVariant(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown size variant: %q", s)
	}
	return v, nil
}

// SizeVariants returns all size variants in a stable order.
func SizeVariants() []SizeVariant {
	return []SizeVariant{SizeThumb, SizeMedium, SizeFull}
}

// EntityRef references a concrete entity. Variation is optional and selects
// an alternate rendition of the same entity (e.g. a color variant).
type EntityRef struct {
	Type      EntityType
	ID        string
	Variation string
}

// ImageID returns the filename stem for the entity's image:
// the bare ID, or "<id>-vv-<variation>" when a variation is set.
func (r EntityRef) ImageID() string {
	if r.Variation == "" {
		return r.ID
	}
	return r.ID + "-vv-" + r.Variation
}

// PageURL returns the canonical page URL for the entity: /<type>/<id>.
func (r EntityRef) PageURL() string {
	return "/" + string(r.Type) + "/" + r.ID
}

// ImageData holds the resolved URLs for all three renditions of an
// entity image. All three carry the same content hash when resolved from a
// real image, or point at fixed placeholders when none exists.
type ImageData struct {
	Thumb  string
	Medium string
	Full   string
}

// ForSize returns the URL for the given size variant.
func (d ImageData) ForSize(v SizeVariant) (string, bool) {
	switch v {
	case SizeThumb:
		return d.Thumb, true
	case SizeMedium:
		return d.Medium, true
	case SizeFull:
		return d.Full, true
	}
	return "", false
}
