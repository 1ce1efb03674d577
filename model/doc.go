// Package model defines core types used throughout assetgo.
//
// # Entity Types
//
//   - EntityType: Closed set of catalog object kinds (item, villager)
//   - EntityRef: Reference to a concrete entity, optionally with a variation
//   - SizeVariant: Rendition selector (thumb, medium, full)
//
// # Image Data
//
//   - ImageData: Resolved URLs for all three renditions
//
// All types are plain values; nothing in this package touches the filesystem.
package model
