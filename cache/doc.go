// Package cache provides the in-memory store for cache-busted static URLs.
//
// StaticCache maps an input URL to its hash-busted form. It is intended for
// a small, bounded set of asset URLs known at deploy time (stylesheets,
// scripts), so there is no eviction, TTL, or size bound: entries accumulate
// monotonically for the process lifetime. A cached value is not recomputed
// if the underlying file changes afterwards; that staleness is an accepted
// tradeoff for assets that only change across deploys.
package cache
