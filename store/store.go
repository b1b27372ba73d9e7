// Package store provides the textual key/value persistence used by the keymap engine.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable is returned by stores that the host has disabled.
var ErrUnavailable = errors.New("store unavailable")

// Store is a string key/value store. Every call may fail.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Open creates the store for backend. path is ignored by the memory and none
// backends. The returned close function is never nil.
func Open(backend, path string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(backend) {
	case BackendFile, "":
		if path == "" {
			return nil, noop, errors.New("file store requires a path")
		}
		return NewFile(path), noop, nil
	case BackendSQLite:
		if path == "" {
			return nil, noop, errors.New("sqlite store requires a path")
		}
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendMemory:
		return NewMemory(), noop, nil
	case BackendNone:
		return Unavailable{}, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", backend)
	}
}
