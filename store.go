package nrs

import (
	"github.com/aweris/nrs/internal/store"
)

// Store is the public interface for local content storage.
// Re-exported from internal/store for convenience.
type Store = store.Store
