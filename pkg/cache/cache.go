// Package cache provides content-addressed caching for rendered layouts
// and export artifacts.
package cache

import (
	"context"
	"errors"
	"time"
)

// Default TTLs per cached stage. Layouts are cheap to recompute, so they
// expire faster than converted artifacts.
const (
	LayoutTTL   = 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// ErrCacheMiss is returned when an item is not found in cache.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque byte blobs under string keys.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts are the inputs that affect a computed layout.
type LayoutKeyOpts struct {
	VizType  string
	Scale    float64
	Detailed bool
}

// ArtifactKeyOpts are the inputs that affect a rendered artifact.
type ArtifactKeyOpts struct {
	Format      string
	Style       string
	Interactive bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey keys a computed layout by the plan state hash and the
	// layout options.
	LayoutKey(stateHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact by the layout hash and the
	// render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(stateHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", stateHash, opts.VizType, opts.Scale, opts.Detailed)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts.Format, opts.Style, opts.Interactive)
}
