package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when the Verdict layout changes; stale entries then miss.
const verdictSchemaVersion uint16 = 1

// Digest is a SHA-256 content key.
type Digest [sha256.Size]byte

// Verdict records that a buffer was already clean for a given
// transform fingerprint, so an unchanged file can skip the pipeline.
type Verdict struct {
	Schema uint16
	Clean  bool
}

// verdictKey hashes file content together with the transform
// fingerprint, so a settings change invalidates every entry.
func verdictKey(content []byte, cacheKey string) Digest {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(cacheKey))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DiskCache stores verdicts under a cache directory, one msgpack file
// per digest. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes the cache at $XDG_CACHE_HOME/<app>
// (falling back to ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes the cache at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "verdicts", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a verdict, replacing atomically.
func (c *DiskCache) Put(key Digest, v *Verdict) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a verdict. The boolean is false on a miss or a schema
// mismatch.
func (c *DiskCache) Get(key Digest, out *Verdict) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != verdictSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
