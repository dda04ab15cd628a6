// Package store implements local persistence for NRS data.
//
// The Store interface is a small content-addressed abstraction:
// Get/Put/Has for snapshot objects, plus named head refs pointing a
// top name at its current register entry. Filesystem-backed with an
// in-memory cache.
package store

import (
	"context"
	"errors"
)

// ErrRefNotFound reports a top name with no local head ref.
var ErrRefNotFound = errors.New("store: ref not found")

// Store handles local content storage.
type Store interface {
	// Get retrieves an object by hash.
	Get(ctx context.Context, hash string) ([]byte, error)

	// Put stores an object and returns its hash.
	Put(ctx context.Context, data []byte) (hash string, err error)

	// Has checks if an object exists.
	Has(ctx context.Context, hash string) (bool, error)

	// GetRef retrieves the head hash for a top name.
	GetRef(topname string) (string, error)

	// PutRef stores the head hash for a top name.
	PutRef(topname, hash string) error

	// DeleteRef removes the head ref for a top name.
	DeleteRef(topname string) error

	// ListRefs returns all top names with a local head ref.
	ListRefs() ([]string, error)

	// Clear drops the in-memory cache.
	Clear()
}
