// Package cache stores rendered cut-list artifacts so the serve mode
// does not redraw identical sheets on every request.
//
// Keys are derived from a hash of the project file plus the render
// options, so any change to either invalidates the entry. Backends:
// [FileCache] for local use, [RedisCache] for shared deployments, and
// [NullCache] to disable caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented cache with per-entry expiration.
type Cache interface {
	// Get retrieves a value. The second result is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// RenderKey builds the cache key for a rendered sheet from the project
// hash and the options that shaped the output. opts must be
// JSON-serializable; identical options always produce identical keys.
func RenderKey(projectHash string, opts any) string {
	data, _ := json.Marshal(opts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("render:%s:%s", projectHash, hex.EncodeToString(sum[:]))
}
