package nrs

import (
	"os"
	"path/filepath"

	"github.com/aweris/nrs/internal/remote"
)

// AutoPull modes
const (
	AutoPullNever   = "never"
	AutoPullAlways  = "always"
	AutoPullMissing = "missing"
)

// Authenticator provides credentials for remote registries.
type Authenticator = remote.Authenticator

// OpenOptions configures a Session.
type OpenOptions struct {
	StoreDir         string
	Remote           string
	Auth             Authenticator
	AutoPull         string
	Concurrency      int
	Version          string
	CacheSize        int
	CompressionLevel int
	Compression      bool
}

// Option is a functional option for configuring Open.
type Option func(*OpenOptions)

func defaultOptions() *OpenOptions {
	return &OpenOptions{
		StoreDir:         defaultStoreDir(),
		AutoPull:         AutoPullNever,
		Concurrency:      remote.DefaultConcurrency,
		CacheSize:        128,
		CompressionLevel: 2,
		Compression:      true,
	}
}

// WithStoreDir sets the local store directory.
func WithStoreDir(dir string) Option {
	return func(o *OpenOptions) { o.StoreDir = dir }
}

// WithRemote sets the OCI image ref used for push/pull
// (e.g., "ttl.sh/myorg/nrs:dave").
func WithRemote(imageRef string) Option {
	return func(o *OpenOptions) { o.Remote = imageRef }
}

// WithAuth sets custom registry authentication.
func WithAuth(auth Authenticator) Option {
	return func(o *OpenOptions) { o.Auth = auth }
}

// WithAutoPull enables automatic pulling from the remote on Open.
func WithAutoPull(mode string) Option {
	return func(o *OpenOptions) { o.AutoPull = mode }
}

// WithConcurrency sets the number of parallel transfers for push/pull.
func WithConcurrency(n int) Option {
	return func(o *OpenOptions) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}

// WithVersion hydrates the session from a pinned register entry
// instead of the current head.
func WithVersion(entryHash string) Option {
	return func(o *OpenOptions) { o.Version = entryHash }
}

// WithCompression configures zstd compression of stored objects
// (level 1 fastest, 3 best).
func WithCompression(enabled bool, level int) Option {
	return func(o *OpenOptions) {
		o.Compression = enabled
		o.CompressionLevel = level
	}
}

func defaultStoreDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "nrs")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "nrs")
	}
	return ".nrs"
}
