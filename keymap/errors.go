package keymap

import (
	"errors"
	"fmt"

	"github.com/Alia5/dactylkeys/store"
)

// Kind classifies engine failures.
type Kind string

// Kinds reported in Error.Kind.
const (
	KindInvalidPosition  Kind = "invalid_position"
	KindStoreUnavailable Kind = "store_unavailable"
	KindReadFailed       Kind = "read_failed"
	KindWriteFailed      Kind = "write_failed"
	KindRemoveFailed     Kind = "remove_failed"
	KindNoSavedData      Kind = "no_saved_data"
	KindCorruptData      Kind = "corrupt_data"
)

// Sentinels wrapped by Error.Err and matched with errors.Is.
var (
	ErrInvalidPosition = errors.New("position has a negative row or column")
	ErrNoSavedData     = errors.New("no saved layout")
	ErrCorruptData     = errors.New("saved layout is corrupt")
)

// Error is returned by every failing engine operation.
type Error struct {
	Op   string
	Kind Kind
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Key != "" {
		msg += fmt.Sprintf(" (key=%s)", e.Key)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// storeError classifies a failed store call. Stores the host disabled report
// KindStoreUnavailable regardless of the operation.
func storeError(op string, kind Kind, err error) *Error {
	if err == nil {
		err = store.ErrUnavailable
		kind = KindStoreUnavailable
	} else if errors.Is(err, store.ErrUnavailable) {
		kind = KindStoreUnavailable
	}
	return &Error{Op: op, Kind: kind, Key: StorageKey, Err: err}
}
