// Package register implements the append-only version log backing each
// top name.
//
// Every commit of an NRS map appends one entry referencing the
// serialized snapshot object and the entry hashes it descends from.
// Entry hashes are the version anchors that locators pin with ?v=; a
// pinned resolution reads one entry instead of the head.
package register

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aweris/nrs/internal/store"
)

// Entry is one version in a top name's history.
type Entry struct {
	// Hash identifies the entry; it is the content hash of the entry
	// object and the value version anchors carry.
	Hash string `json:"-"`

	// Snapshot is the object hash of the serialized map at this
	// version.
	Snapshot string `json:"snapshot"`

	// Parents are the entry hashes this version descends from. Empty
	// for the first entry.
	Parents []string `json:"parents,omitempty"`
}

// Log is the version log of one top name, backed by a content store.
type Log struct {
	store   store.Store
	topname string
}

// New opens the log for a top name.
func New(s store.Store, topname string) *Log {
	return &Log{store: s, topname: topname}
}

// Topname returns the top name this log belongs to.
func (l *Log) Topname() string {
	return l.topname
}

// Head returns the entry hash the top name currently points at.
func (l *Log) Head(ctx context.Context) (string, error) {
	return l.store.GetRef(l.topname)
}

// Write appends an entry for a snapshot and advances the head to it.
// Parents are stored sorted so the entry hash is independent of
// argument order.
func (l *Log) Write(ctx context.Context, snapshotHash string, parents []string) (string, error) {
	sorted := append([]string(nil), parents...)
	sort.Strings(sorted)

	data, err := json.Marshal(Entry{Snapshot: snapshotHash, Parents: sorted})
	if err != nil {
		return "", fmt.Errorf("encode entry: %w", err)
	}

	hash, err := l.store.Put(ctx, data)
	if err != nil {
		return "", fmt.Errorf("store entry: %w", err)
	}

	if err := l.store.PutRef(l.topname, hash); err != nil {
		return "", fmt.Errorf("advance head: %w", err)
	}
	return hash, nil
}

// Read returns the head entry.
func (l *Log) Read(ctx context.Context) (*Entry, error) {
	head, err := l.Head(ctx)
	if err != nil {
		return nil, err
	}
	return l.ReadEntry(ctx, head)
}

// ReadEntry returns the entry with the given hash.
func (l *Log) ReadEntry(ctx context.Context, hash string) (*Entry, error) {
	data, err := l.store.Get(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", hash, err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode entry %s: %w", hash, err)
	}
	e.Hash = hash
	return &e, nil
}

// Entries walks the history from the head, newest first. With merge
// entries the walk visits each ancestor once.
func (l *Log) Entries(ctx context.Context) ([]*Entry, error) {
	head, err := l.Head(ctx)
	if err != nil {
		return nil, err
	}

	var history []*Entry
	seen := make(map[string]bool)
	queue := []string{head}
	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]
		if seen[hash] {
			continue
		}
		seen[hash] = true

		e, err := l.ReadEntry(ctx, hash)
		if err != nil {
			return nil, err
		}
		history = append(history, e)
		queue = append(queue, e.Parents...)
	}
	return history, nil
}

// Collect gathers every object reachable from the head — entry objects
// and their snapshots — keyed by hash, for replication.
func (l *Log) Collect(ctx context.Context) (map[string][]byte, error) {
	entries, err := l.Entries(ctx)
	if err != nil {
		return nil, err
	}

	objects := make(map[string][]byte, len(entries)*2)
	for _, e := range entries {
		data, err := l.store.Get(ctx, e.Hash)
		if err != nil {
			return nil, err
		}
		objects[e.Hash] = data

		snapshot, err := l.store.Get(ctx, e.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("read snapshot %s: %w", e.Snapshot, err)
		}
		objects[e.Snapshot] = snapshot
	}
	return objects, nil
}
