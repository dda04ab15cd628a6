package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/aweris/nrs/internal/compression"
)

// LocalStore implements Store using the local filesystem.
//
// Storage layout:
//
//	basePath/
//	  objects/
//	    ab/cd123...  (content-addressed snapshot and register objects)
//	  names/
//	    dave         (plain text: head entry hash for top name "dave")
type LocalStore struct {
	basePath string
	cache    Cache
	codec    *compression.Codec
}

// NewLocalStore opens or creates a store rooted at basePath.
func NewLocalStore(basePath string, cacheSize, compressionLevel int, compressionEnabled bool) (*LocalStore, error) {
	for _, dir := range []string{filepath.Join(basePath, "objects"), filepath.Join(basePath, "names")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	codec, err := compression.NewCodec(compressionLevel, compressionEnabled)
	if err != nil {
		return nil, fmt.Errorf("create codec: %w", err)
	}

	return &LocalStore{
		basePath: basePath,
		cache:    NewLRUCache(cacheSize),
		codec:    codec,
	}, nil
}

// Get retrieves an object by hash.
func (s *LocalStore) Get(ctx context.Context, hash string) ([]byte, error) {
	if data, ok := s.cache.Get(hash); ok {
		return data, nil
	}

	raw, err := os.ReadFile(s.objectPath(hash))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object not found: %s", hash)
		}
		return nil, fmt.Errorf("read object: %w", err)
	}

	data, err := s.codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress object %s: %w", hash, err)
	}

	s.cache.Add(hash, data)
	return data, nil
}

// Put stores an object and returns its sha256 hash.
func (s *LocalStore) Put(ctx context.Context, data []byte) (string, error) {
	h := sha256.Sum256(data)
	hash := hex.EncodeToString(h[:])

	path := s.objectPath(hash)
	if _, err := os.Stat(path); err == nil {
		return hash, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}
	if err := os.WriteFile(path, s.codec.Compress(data), 0644); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}

	s.cache.Add(hash, data)
	return hash, nil
}

// Has checks if an object exists.
func (s *LocalStore) Has(ctx context.Context, hash string) (bool, error) {
	if s.cache.Has(hash) {
		return true, nil
	}
	_, err := os.Stat(s.objectPath(hash))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// GetRef retrieves the head hash for a top name.
func (s *LocalStore) GetRef(topname string) (string, error) {
	data, err := os.ReadFile(s.refPath(topname))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrRefNotFound, topname)
		}
		return "", err
	}
	return string(data), nil
}

// PutRef stores the head hash for a top name.
func (s *LocalStore) PutRef(topname, hash string) error {
	return os.WriteFile(s.refPath(topname), []byte(hash), 0644)
}

// DeleteRef removes the head ref for a top name.
func (s *LocalStore) DeleteRef(topname string) error {
	err := os.Remove(s.refPath(topname))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrRefNotFound, topname)
	}
	return err
}

// ListRefs returns all top names with a local head ref, sorted.
func (s *LocalStore) ListRefs() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.basePath, "names"))
	if err != nil {
		return nil, fmt.Errorf("list refs: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Clear drops the in-memory cache.
func (s *LocalStore) Clear() {
	s.cache.Clear()
}

// objectPath returns the filesystem path for an object hash.
// Git-style sharding: objects/ab/cd123...
func (s *LocalStore) objectPath(hash string) string {
	if len(hash) < 2 {
		return filepath.Join(s.basePath, "objects", hash)
	}
	return filepath.Join(s.basePath, "objects", hash[:2], hash[2:])
}

func (s *LocalStore) refPath(topname string) string {
	return filepath.Join(s.basePath, "names", topname)
}
