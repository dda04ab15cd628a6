package nrs

import "go.uber.org/zap"

// Logging is off by default; callers opt in with SetLogger or the
// session-level WithLogger option.
var log = zap.NewNop().Sugar()

// SetLogger replaces the package-level logger used by map and name
// operations.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l.Sugar()
}
