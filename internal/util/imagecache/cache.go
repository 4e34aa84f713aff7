// Package imagecache keeps downloaded images on disk so repeated picks from
// the same URL skip the download.
package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	httputil "github.com/jmylchreest/colourcalc/internal/util/http"
)

// Cache stores fetched images in Dir.
type Cache struct {
	// Dir is the cache directory. If empty, DefaultDir is used.
	Dir string

	// Refresh re-downloads a URL even when a cached copy exists.
	Refresh bool

	// FetchOptions configure the download.
	FetchOptions httputil.FetchOptions
}

// DefaultDir returns the default cache directory, <UserCacheDir>/colourcalc/images.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "colourcalc", "images"), nil
	}
	return filepath.Join(cacheDir, "colourcalc", "images"), nil
}

// Filename returns the deterministic cache filename for rawURL: the first 16
// bytes of its SHA-256 in hex, plus the extension of the URL path.
func Filename(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	name := hex.EncodeToString(sum[:16])

	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	return name + ext
}

func (c *Cache) dir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	return DefaultDir()
}

// Path returns where rawURL is (or would be) cached.
func (c *Cache) Path(rawURL string) (string, error) {
	dir, err := c.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, Filename(rawURL)), nil
}

// Get returns the local path of rawURL, downloading it first unless a cached
// copy exists and Refresh is unset. The second result reports a cache hit.
func (c *Cache) Get(ctx context.Context, rawURL string) (string, bool, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", false, fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	cachedPath, err := c.Path(rawURL)
	if err != nil {
		return "", false, err
	}

	if !c.Refresh {
		if _, err := os.Stat(cachedPath); err == nil {
			return cachedPath, true, nil
		}
	}

	data, err := httputil.Fetch(ctx, rawURL, c.FetchOptions)
	if err != nil {
		return "", false, fmt.Errorf("failed to download image: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cachedPath), 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return "", false, fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Write then rename so a failed download never leaves a truncated entry.
	tmp, err := os.CreateTemp(filepath.Dir(cachedPath), ".download-*")
	if err != nil {
		return "", false, fmt.Errorf("failed to write cached image: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", false, fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", false, fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp.Name(), cachedPath); err != nil {
		os.Remove(tmp.Name())
		return "", false, fmt.Errorf("failed to write cached image: %w", err)
	}

	return cachedPath, false, nil
}
