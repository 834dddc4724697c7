// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jcmp/jcmp/internal/log"
)

// Entry is one cached artifact on disk. Key is the clear-text key;
// EncodedKey is the hashed filename it lives under.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
	Data       []byte
}

// Dir resolves the base cache directory: JCMP_CACHE_DIR when set, otherwise
// os.UserCacheDir()/jcmp. Returns ("", false) when no base can be resolved,
// which callers treat as caching disabled.
func Dir() (string, bool) {
	if dir := os.Getenv("JCMP_CACHE_DIR"); dir != "" {
		return dir, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "jcmp"), true
	}
	return "", false
}

// Enabled reports whether caching is on. Only JCMP_CACHE=0 or
// JCMP_CACHE=false turn it off.
func Enabled() bool {
	switch os.Getenv("JCMP_CACHE") {
	case "0", "false":
		return false
	}
	return true
}

// EnsureBaseDir creates the base cache directory when caching is enabled and
// a base path resolves. The bool reports whether the cache is usable.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	log.Debugf("created cache dir: path=%s", base)
	return base, true, nil
}

// ResultKey derives the clear-text cache key for one comparison. Both input
// documents are digested into the key along with the comparison-relevant
// option string, so editing either document or changing an option misses.
func ResultKey(left, right []byte, opts string) string {
	return fmt.Sprintf("%s:%s:%s", encodeKey(string(left)), encodeKey(string(right)), opts)
}

// EntryPath returns where an entry for clearKey would live under subdirs,
// and whether a file is currently there.
func EntryPath(subdirs []string, clearKey string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	parts := append([]string{base}, subdirs...)
	p := filepath.Join(append(parts, encodeKey(clearKey))...)
	_, err := os.Stat(p)
	return p, err == nil
}

// Read loads the entry for clearKey, trimming surrounding whitespace from
// the stored bytes. Misses and disabled caches both report false.
func Read(subdirs []string, clearKey string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := EntryPath(subdirs, clearKey)
	if !ok {
		return nil, false
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", clearKey)
	return &Entry{
		Key:        clearKey,
		EncodedKey: encodeKey(clearKey),
		Path:       p,
		Data:       bytes.TrimSpace(raw),
	}, true
}

// Write stores data under clearKey beneath subdirs, creating directories as
// needed. A disabled cache makes this a no-op.
func Write(subdirs []string, clearKey string, data []byte) error {
	if !Enabled() {
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}

	dir := filepath.Join(append([]string{base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	p := filepath.Join(dir, encodeKey(clearKey))
	if err := os.WriteFile(p, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: key=%s", clearKey)
	return nil
}

// Purge removes cache files older than hours. hours <= 0 disables purging;
// an unresolvable cache dir is a no-op.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}

	maxAge := time.Duration(hours) * time.Hour
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Files can vanish mid-walk when concurrent invocations share a
			// cache dir.
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

func encodeKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
