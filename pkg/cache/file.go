package cache

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FileCache implements a file-based cache for CLI usage. Artifacts are binary
// images, so entries are stored as raw bytes; expiring entries get a small
// sidecar file holding the expiry as a Unix timestamp.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	if exp, ok := c.expiry(path); ok && time.Now().After(exp) {
		_ = os.Remove(path)
		_ = os.Remove(path + expirySuffix)
		return nil, false, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	if ttl <= 0 {
		// Entries without a TTL never expire; drop any stale sidecar from a
		// previous Set with one.
		_ = os.Remove(path + expirySuffix)
		return nil
	}
	stamp := strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	return os.WriteFile(path+expirySuffix, []byte(stamp), 0644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	path := c.path(key)
	_ = os.Remove(path + expirySuffix)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

const expirySuffix = ".expires"

// expiry reads an entry's expiry sidecar. A missing or malformed sidecar
// means the entry does not expire.
func (c *FileCache) expiry(path string) (time.Time, bool) {
	data, err := os.ReadFile(path + expirySuffix)
	if err != nil {
		return time.Time{}, false
	}
	secs, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(secs, 0), true
}

// path converts a cache key to a file path.
// Uses a simple hash-based directory structure to avoid too many files in one dir.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	// Use first 2 chars as subdirectory for distribution
	subdir := hash[:2]
	filename := hash[2:] + ".bin"
	return filepath.Join(c.dir, subdir, filename)
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
