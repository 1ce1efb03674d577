// Package assetgo resolves and cache-busts static asset URLs.
//
// The resolver answers two questions for page-rendering code: "which image
// file does this entity have?" and "what URL should I emit so a CDN refetches
// the file when its content changes?". It probes the asset tree for candidate
// encodings, fingerprints file contents with a short hash, and splices the
// hash into the URL's final path segment before the extension.
//
// # Basic Usage
//
//	resolver := assetgo.New() // probes ./public by default
//
//	data, err := resolver.EntityImageData(ctx, model.EntityRef{
//	    Type: model.EntityTypeItem,
//	    ID:   "42",
//	})
//	// data.Thumb, data.Medium, data.Full all carry the same content hash.
//
//	href, err := resolver.CacheBustedURL(ctx, "/css/main.css")
//	// "/css/main.a1b2c3d.css", cached for subsequent calls.
//
// # Asset Layout
//
// Entity images live under the source root at
// images/<type>s/<size>/<imageID>.<ext> for ext in .png, .jpg, .jpeg.
// Existence is always checked against the full rendition; thumb and medium
// are assumed to be generated from it. Generic assets (CSS, JS) live at
// arbitrary paths under the root.
//
// # Backends
//
// The default source is the local filesystem (source.Local rooted at
// "public"). Remote origins are supported via source/minio and source/s3;
// wrap them with source.RateLimited to bound probe pressure.
package assetgo
