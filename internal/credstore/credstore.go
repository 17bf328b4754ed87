// Package credstore persists the single bearer token for the inventory API
// in the OS keychain. The store holds at most one credential: each login
// overwrites it and each logout clears it. An unavailable or empty keychain
// reads as "no credential" rather than an error, so a broken keyring
// degrades to the logged-out experience instead of breaking the CLI.
package credstore

import (
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "damafashion"

// tokenKey is the single storage key holding the raw bearer token.
const tokenKey = "auth_token"

// Store is a single-slot credential store for the API bearer token.
type Store interface {
	// Get returns the stored token. ok is false when no token is stored
	// or the underlying storage is unavailable.
	Get() (token string, ok bool)
	// Set overwrites the stored token.
	Set(token string) error
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// Keyring is a Store backed by the OS keychain via 99designs/keyring.
type Keyring struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// Open opens the OS keyring and returns a keychain-backed Store.
func Open() (*Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
		},
		PassPrefix:    ServiceName,
		WinCredPrefix: ServiceName,
	})
	if err != nil {
		return nil, err
	}
	return &Keyring{ring: ring}, nil
}

// Get returns the stored token. Any keyring failure reads as absent.
func (k *Keyring) Get() (string, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	it, err := k.ring.Get(tokenKey)
	if err != nil || len(it.Data) == 0 {
		return "", false
	}
	return string(it.Data), true
}

// Set overwrites the stored token.
func (k *Keyring) Set(token string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.ring.Set(keyring.Item{Key: tokenKey, Data: []byte(token)})
}

// Clear removes the stored token. A missing key is not an error.
func (k *Keyring) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.ring.Remove(tokenKey); err != nil && err != keyring.ErrKeyNotFound {
		return err
	}
	return nil
}
