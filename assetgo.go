package assetgo

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/hupe1980/assetgo/cache"
	"github.com/hupe1980/assetgo/internal/hash"
	"github.com/hupe1980/assetgo/model"
	"github.com/hupe1980/assetgo/source"
)

// DefaultRoot is the directory the default local source is rooted at,
// relative to the process working directory.
const DefaultRoot = "public"

// imageExts are the accepted image encodings, probed in this order.
// First match wins.
var imageExts = []string{".png", ".jpg", ".jpeg"}

// Resolver resolves entity image URLs and cache-busts static asset URLs.
// Safe for concurrent use.
type Resolver struct {
	source  source.Source
	statics *cache.StaticCache
	group   singleflight.Group
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Resolver. With no options it probes the local filesystem
// under "public" and logs nothing.
func New(opts ...Option) *Resolver {
	o := options{
		source:  source.NewLocal(DefaultRoot),
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Resolver{
		source:  o.source,
		statics: cache.NewStaticCache(),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// ImageURL returns the URL for the requested size variant of an entity's
// image, e.g. "/images/items/full/42.png".
//
// Existence is probed against the full rendition only, trying .png, .jpg
// and .jpeg in that order; the first encoding found determines the
// extension of the returned URL. Returns ErrNotFound when no candidate
// exists, *ErrInvalidSize / *ErrInvalidEntityType for tags outside the
// closed sets.
func (r *Resolver) ImageURL(ctx context.Context, ref model.EntityRef, size model.SizeVariant) (string, error) {
	start := time.Now()
	url, err := r.imageURL(ctx, ref, size)
	r.metrics.RecordResolve(time.Since(start), err)
	r.logger.LogImageResolve(ctx, ref, url, err == nil)
	return url, err
}

func (r *Resolver) imageURL(ctx context.Context, ref model.EntityRef, size model.SizeVariant) (string, error) {
	if !size.Valid() {
		return "", &ErrInvalidSize{Size: size}
	}
	if !ref.Type.Valid() {
		return "", &ErrInvalidEntityType{Type: ref.Type}
	}

	dir := path.Join("images", string(ref.Type)+"s")
	imageID := ref.ImageID()

	for _, ext := range imageExts {
		ok, err := r.source.Exists(ctx, path.Join(dir, string(model.SizeFull), imageID+ext))
		if err != nil {
			return "", err
		}
		if ok {
			return "/" + path.Join(dir, string(size), imageID+ext), nil
		}
	}
	return "", ErrNotFound
}

// placeholderData returns the fixed image-not-available trio.
func placeholderData() model.ImageData {
	url := func(v model.SizeVariant) string {
		return fmt.Sprintf("/images/image-not-available-%s.svg", v)
	}
	return model.ImageData{
		Thumb:  url(model.SizeThumb),
		Medium: url(model.SizeMedium),
		Full:   url(model.SizeFull),
	}
}

// EntityImageData resolves cache-busted URLs for all three renditions of an
// entity's image.
//
// The content hash is computed once, from the full image, and spliced into
// all three URLs; thumb and medium renditions are regenerated whenever the
// full image changes, so one fingerprint covers all of them. When no image
// exists the call returns the fixed placeholder trio, or ErrNotFound if
// WithoutPlaceholder was given.
func (r *Resolver) EntityImageData(ctx context.Context, ref model.EntityRef, opts ...ImageDataOption) (model.ImageData, error) {
	o := imageDataOptions{placeholder: true}
	for _, opt := range opts {
		opt(&o)
	}

	fullURL, err := r.ImageURL(ctx, ref, model.SizeFull)
	if err != nil {
		if errors.Is(err, ErrNotFound) && o.placeholder {
			return placeholderData(), nil
		}
		return model.ImageData{}, err
	}

	h, err := r.hashAsset(ctx, fullURL)
	if err != nil {
		return model.ImageData{}, err
	}

	var data model.ImageData
	for _, size := range model.SizeVariants() {
		url, err := r.ImageURL(ctx, ref, size)
		if err != nil {
			return model.ImageData{}, err
		}
		url = AddHash(url, h)

		switch size {
		case model.SizeThumb:
			data.Thumb = url
		case model.SizeMedium:
			data.Medium = url
		case model.SizeFull:
			data.Full = url
		}
	}
	return data, nil
}

// StaticAssetURL returns url with a content hash spliced in before the
// extension. If precomputed is non-empty it is used as-is; otherwise the
// file at url under the source root is read and fingerprinted. A missing
// file degrades gracefully: the original url is returned unhashed. Other
// read errors (e.g. permissions) are returned to the caller.
func (r *Resolver) StaticAssetURL(ctx context.Context, url string, precomputed string) (string, error) {
	h := precomputed
	if h == "" {
		var err error
		h, err = r.hashAsset(ctx, url)
		if errors.Is(err, source.ErrNotFound) {
			return url, nil
		}
		if err != nil {
			return "", err
		}
	}
	return AddHash(url, h), nil
}

// CacheBustedURL returns the cache-busted form of url, computing and caching
// it on first use. Subsequent calls for the same url return the cached
// string without touching the source, even if the underlying file has
// changed since. Concurrent first calls for the same url are deduplicated so
// the file is read and hashed once.
func (r *Resolver) CacheBustedURL(ctx context.Context, url string) (string, error) {
	if busted, ok := r.statics.Get(url); ok {
		r.metrics.RecordCacheLookup(true)
		r.logger.LogCacheBust(ctx, url, busted, true)
		return busted, nil
	}
	r.metrics.RecordCacheLookup(false)

	v, err, _ := r.group.Do(url, func() (any, error) {
		busted, err := r.StaticAssetURL(ctx, url, "")
		if err != nil {
			return nil, err
		}
		// Stored even when identical to the input so the miss is paid once.
		r.statics.Set(url, busted)
		return busted, nil
	})
	if err != nil {
		return "", err
	}

	busted := v.(string)
	r.logger.LogCacheBust(ctx, url, busted, false)
	return busted, nil
}

// WarmStatic precomputes cache-busted URLs for a known set of static assets,
// typically at process start. Failures abort the warmup and are returned to
// the caller.
func (r *Resolver) WarmStatic(ctx context.Context, urls ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, url := range urls {
		url := url
		g.Go(func() error {
			_, err := r.CacheBustedURL(ctx, url)
			return err
		})
	}
	return g.Wait()
}

// CacheStats returns hit/miss counters for the static URL cache.
func (r *Resolver) CacheStats() (hits, misses int64) {
	return r.statics.Stats()
}

// hashAsset reads the asset at url (leading "/" is relative to the source
// root) and returns its short content fingerprint.
func (r *Resolver) hashAsset(ctx context.Context, url string) (string, error) {
	name := strings.TrimPrefix(url, "/")

	start := time.Now()
	data, err := r.source.ReadFile(ctx, name)
	if err != nil {
		return "", err
	}
	h := hash.Short(data)
	r.metrics.RecordHash(len(data), time.Since(start))
	return h, nil
}

// EntityURL returns the canonical page URL for an entity: /<type>/<id>.
func EntityURL(typ model.EntityType, id string) string {
	return model.EntityRef{Type: typ, ID: id}.PageURL()
}
