// Package remote replicates NRS version logs through an OCI registry.
//
// A top name's reachable objects (register entries and map snapshots)
// are packed into zstd layers of an OCI image; the head entry hash
// travels in a config label. Built on go-containerregistry.
package remote

import "context"

// Remote handles registry operations for one image reference.
type Remote interface {
	// Push uploads a head hash and its reachable objects.
	Push(ctx context.Context, headHash string, objects map[string][]byte) error

	// Pull downloads the remote head hash and all objects.
	Pull(ctx context.Context) (headHash string, objects map[string][]byte, err error)

	// Head retrieves the remote head hash without downloading objects.
	Head(ctx context.Context) (string, error)
}
