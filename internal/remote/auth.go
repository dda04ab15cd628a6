package remote

// Authenticator provides credentials for a registry.
type Authenticator interface {
	// Authenticate returns basic credentials for the given registry.
	// Empty username means "fall back to the default keychain".
	Authenticate(registry string) (username, password string, err error)
}

// KeychainAuthenticator defers to the system keychain (Docker config,
// credential helpers).
type KeychainAuthenticator struct{}

// NewKeychainAuthenticator creates the default authenticator.
func NewKeychainAuthenticator() *KeychainAuthenticator {
	return &KeychainAuthenticator{}
}

// Authenticate returns no explicit credentials, selecting the
// keychain.
func (a *KeychainAuthenticator) Authenticate(registry string) (string, string, error) {
	return "", "", nil
}
