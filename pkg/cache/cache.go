// Package cache provides pluggable caching for rendered pitch artifacts.
//
// Rendering a figure is deterministic in its inputs, so artifacts are cached
// under keys derived from the event data and render options. Backends cover
// local CLI usage (FileCache), the render service (RedisCache) and disabled
// caching (NullCache).
package cache

import (
	"context"
	"time"
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for render artifacts.
type Keyer interface {
	// RenderKey generates a key for a rendered artifact from the hash of the
	// event data and the options that affect the output.
	RenderKey(eventsHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts are the render options that shape the artifact. Every field
// that changes the output bytes must be included, or stale artifacts will be
// served.
type RenderKeyOpts struct {
	Kind     string  `json:"kind"`
	Preset   string  `json:"preset"`
	Theme    string  `json:"theme"`
	Format   string  `json:"format"`
	Vertical bool    `json:"vertical"`
	Half     bool    `json:"half"`
	Width    float64 `json:"width"`
	Scale    float64 `json:"scale"`
	ColorMap string  `json:"color_map"`
}

// DefaultKeyer generates hash-based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(eventsHash string, opts RenderKeyOpts) string {
	return hashKey("render", eventsHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
