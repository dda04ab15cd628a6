package nrs

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/aweris/nrs/internal/register"
	"github.com/aweris/nrs/internal/remote"
	"github.com/aweris/nrs/internal/store"
	"github.com/aweris/nrs/locator"
)

// NrsTypeTag is the network type tag of NRS map containers.
const NrsTypeTag = 1500

// Session owns the NRS map of one top name together with its
// collaborators: the local store, the register log holding the map's
// version history, and an optional OCI remote for replication.
//
// A Session assumes a single writer; serialize access externally when
// sharing one across goroutines.
type Session struct {
	topname string
	m       *Map

	store  store.Store
	log    *register.Log
	remote *remote.OCIRemote

	// head is the register entry the current map was hydrated from;
	// empty until the first commit of a fresh top name.
	head  string
	dirty bool
}

// Open opens (or creates) the session for a top name, hydrating the
// map from the local register head. WithVersion pins hydration to a
// specific entry instead.
func Open(topname string, opts ...Option) (*Session, error) {
	labels, err := splitName(topname)
	if err != nil {
		return nil, err
	}
	if len(labels) != 1 {
		return nil, fmt.Errorf("%w: top name %q must be a single label", ErrMalformedName, topname)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	local, err := store.NewLocalStore(options.StoreDir, options.CacheSize, options.CompressionLevel, options.Compression)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Session{
		topname: topname,
		m:       NewMap(),
		store:   local,
		log:     register.New(local, topname),
	}

	if options.Remote != "" {
		auth := options.Auth
		if auth == nil {
			auth = remote.NewKeychainAuthenticator()
		}
		ociRemote, err := remote.NewOCIRemote(options.Remote, auth)
		if err != nil {
			return nil, err
		}
		ociRemote.SetConcurrency(options.Concurrency)
		s.remote = ociRemote
	}

	ctx := context.Background()

	if s.remote != nil && options.AutoPull == AutoPullAlways {
		_ = s.Pull(ctx)
	}

	if err := s.hydrate(ctx, options.Version); err != nil {
		if !errors.Is(err, store.ErrRefNotFound) {
			return nil, err
		}
		if s.remote != nil && options.AutoPull == AutoPullMissing {
			_ = s.Pull(ctx)
			if err := s.hydrate(ctx, options.Version); err != nil && !errors.Is(err, store.ErrRefNotFound) {
				return nil, err
			}
		}
	}

	return s, nil
}

func (s *Session) hydrate(ctx context.Context, version string) error {
	entryHash := version
	if entryHash == "" {
		head, err := s.log.Head(ctx)
		if err != nil {
			return err
		}
		entryHash = head
	}

	entry, err := s.log.ReadEntry(ctx, entryHash)
	if err != nil {
		return err
	}

	data, err := s.store.Get(ctx, entry.Snapshot)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	m, err := LoadMap(data)
	if err != nil {
		return err
	}

	s.m = m
	s.head = entryHash
	s.dirty = false
	log.Debugw("hydrated nrs map", "topname", s.topname, "entry", entryHash, "entries", m.Len())
	return nil
}

// Topname returns the top name this session owns.
func (s *Session) Topname() string { return s.topname }

// Map returns the in-memory map, the full snapshot for persistence or
// inspection.
func (s *Session) Map() *Map { return s.m }

// Head returns the register entry hash the map was hydrated from, or
// "" for a fresh top name.
func (s *Session) Head() string { return s.head }

// Dirty reports whether the map has uncommitted changes.
func (s *Session) Dirty() bool { return s.dirty }

// Add registers a link under a full public name belonging to this
// session's top name.
func (s *Session) Add(fullName, link string) (string, error) {
	top, err := TopName(fullName)
	if err != nil {
		return "", err
	}
	if top != s.topname {
		return "", fmt.Errorf("%w: %q does not belong to top name %q", ErrMalformedName, fullName, s.topname)
	}

	stored, err := s.m.Update(fullName, link)
	if err != nil {
		return "", err
	}
	s.dirty = true
	return stored, nil
}

// Remove deletes the entry for a subname path and returns its former
// link.
func (s *Session) Remove(subname string) (string, error) {
	link, err := s.m.Remove(subname)
	if err != nil {
		return "", err
	}
	s.dirty = true
	return link, nil
}

// Resolve looks up the link for a raw public name.
func (s *Session) Resolve(fullName string) (string, error) {
	return s.m.ResolveFullName(fullName)
}

// ResolveDefault looks up the link registered for the top name itself.
func (s *Session) ResolveDefault() (string, error) {
	return s.m.DefaultLink()
}

// Commit serializes the map, appends a register entry descending from
// the current head and advances the head to it. Committing a clean
// session is a no-op returning the current head.
func (s *Session) Commit(ctx context.Context) (string, error) {
	if !s.dirty {
		return s.head, nil
	}

	data, err := s.m.Serialize()
	if err != nil {
		return "", fmt.Errorf("serialize map: %w", err)
	}

	snapshotHash, err := s.store.Put(ctx, data)
	if err != nil {
		return "", fmt.Errorf("store snapshot: %w", err)
	}

	var parents []string
	if s.head != "" {
		parents = []string{s.head}
	}

	entryHash, err := s.log.Write(ctx, snapshotHash, parents)
	if err != nil {
		return "", err
	}

	s.head = entryHash
	s.dirty = false
	log.Infow("committed nrs map", "topname", s.topname, "entry", entryHash)
	return entryHash, nil
}

// ContainerLocator returns the locator of the map container itself,
// pinned to the current head. The session must be committed first.
func (s *Session) ContainerLocator() (*locator.Locator, error) {
	if s.head == "" || s.dirty {
		return nil, fmt.Errorf("nrs: top name %q has uncommitted changes", s.topname)
	}
	name := sha256.Sum256([]byte(s.topname))
	loc := locator.New(locator.NrsMapContainer, locator.Register, name, NrsTypeTag)
	return loc.WithVersion(s.head), nil
}

// Push replicates the committed history to the remote.
func (s *Session) Push(ctx context.Context) error {
	if s.remote == nil {
		return ErrNoRemote
	}

	head, err := s.log.Head(ctx)
	if err != nil {
		return fmt.Errorf("nothing committed for %q: %w", s.topname, err)
	}

	objects, err := s.log.Collect(ctx)
	if err != nil {
		return err
	}

	if err := s.remote.Push(ctx, head, objects); err != nil {
		return err
	}
	log.Infow("pushed nrs history", "topname", s.topname, "head", head, "objects", len(objects))
	return nil
}

// Pull fetches the remote history, stores its objects, advances the
// local head and rehydrates the map. Local uncommitted changes are
// discarded.
func (s *Session) Pull(ctx context.Context) error {
	if s.remote == nil {
		return ErrNoRemote
	}

	head, objects, err := s.remote.Pull(ctx)
	if err != nil {
		return err
	}

	for hash, data := range objects {
		stored, err := s.store.Put(ctx, data)
		if err != nil {
			return fmt.Errorf("store object %s: %w", hash, err)
		}
		if stored != hash {
			return fmt.Errorf("object %s hashes to %s", hash, stored)
		}
	}

	if _, ok := objects[head]; !ok {
		if ok, err := s.store.Has(ctx, head); err != nil || !ok {
			return fmt.Errorf("remote head %s not among pulled objects", head)
		}
	}

	if err := s.store.PutRef(s.topname, head); err != nil {
		return fmt.Errorf("advance head: %w", err)
	}

	if err := s.hydrate(ctx, ""); err != nil {
		return err
	}
	log.Infow("pulled nrs history", "topname", s.topname, "head", head, "objects", len(objects))
	return nil
}

// History returns the entry hashes of the committed history, newest
// first.
func (s *Session) History(ctx context.Context) ([]string, error) {
	entries, err := s.log.Entries(ctx)
	if err != nil {
		return nil, err
	}
	hashes := make([]string, len(entries))
	for i, e := range entries {
		hashes[i] = e.Hash
	}
	return hashes, nil
}

// Close commits any pending changes.
func (s *Session) Close() error {
	if !s.dirty {
		return nil
	}
	_, err := s.Commit(context.Background())
	return err
}
