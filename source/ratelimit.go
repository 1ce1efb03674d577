package source

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited wraps a Source and bounds the rate of probe and read
// operations. Useful in front of remote origins (S3, MinIO) where each
// existence probe is a billable request.
type RateLimited struct {
	inner   Source
	limiter *rate.Limiter
}

// NewRateLimited creates a RateLimited source allowing opsPerSec operations
// per second with the given burst.
func NewRateLimited(inner Source, opsPerSec float64, burst int) *RateLimited {
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(opsPerSec), burst),
	}
}

// Exists waits for limiter capacity, then delegates to the inner source.
func (s *RateLimited) Exists(ctx context.Context, name string) (bool, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return false, err
	}
	return s.inner.Exists(ctx, name)
}

// ReadFile waits for limiter capacity, then delegates to the inner source.
func (s *RateLimited) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.ReadFile(ctx, name)
}
