// Package cache stores AI analysis responses keyed by prompt and model,
// so repeated analyze runs against an unchanged codebase skip the API call.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
)

// Key computes a deterministic SHA256 hash of the analysis inputs.
// Order is critical: model first, then prompt.
func Key(model, prompt string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}

// Path returns the cache file location for a key. BUSLOG_CACHE_DIR
// overrides the default user cache directory.
func Path(key string) string {
	base := os.Getenv("BUSLOG_CACHE_DIR")
	if base == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			base = filepath.Join(dir, "buslog")
		} else {
			base = ".buslog-cache"
		}
	}
	return filepath.Join(base, "analyze", key+".md")
}

// Read returns the cached response for a key. A missing file is a cache miss.
func Read(key string) (string, error) {
	data, err := os.ReadFile(Path(key))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write stores a response for a key, creating directories as needed.
func Write(key, response string) error {
	path := Path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(response), 0o644)
}

// Exists checks whether a cached response is present for a key.
func Exists(key string) bool {
	_, err := os.Stat(Path(key))
	return err == nil
}
