package assetgo

import (
	"github.com/hupe1980/assetgo/source"
)

type options struct {
	source  source.Source
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Resolver construction.
type Option func(*options)

// WithSource configures the asset backend the resolver probes and reads
// through. Defaults to the local filesystem rooted at "public".
func WithSource(s source.Source) Option {
	return func(o *options) {
		if s != nil {
			o.source = s
		}
	}
}

// WithLogger configures the logger. Defaults to a no-op logger; resolution
// logging is debug-level only.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics configures the metrics collector. Defaults to a no-op collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

type imageDataOptions struct {
	placeholder bool
}

// ImageDataOption configures a single EntityImageData call.
type ImageDataOption func(*imageDataOptions)

// WithoutPlaceholder disables the placeholder fallback: when no image exists
// the call returns ErrNotFound instead of the image-not-available trio.
func WithoutPlaceholder() ImageDataOption {
	return func(o *imageDataOptions) {
		o.placeholder = false
	}
}
