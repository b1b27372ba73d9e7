// Package keymap holds the editing session state of a keyboard layout: the
// live buffer (current) and the last committed buffer (saved), and every
// operation that moves data between them and the store.
//
// An Engine has a single writer and does no locking.
package keymap

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Alia5/dactylkeys/export"
	"github.com/Alia5/dactylkeys/keycode"
	"github.com/Alia5/dactylkeys/layout"
	"github.com/Alia5/dactylkeys/store"
)

// Engine owns the current and saved keymaps of one editing session.
type Engine struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	current layout.Keymap
	saved   layout.Keymap
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New starts a session. The saved keymap is read from st; when st is nil or
// holds no usable layout the factory default is used instead. New never fails.
func New(st store.Store, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := &Engine{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	km, err := e.read("init")
	if err != nil {
		if IsKind(err, KindNoSavedData) {
			e.logger.Debug("no saved layout, using factory default")
		} else {
			e.logger.Warn("saved layout unusable, using factory default", "error", err)
		}
		km = layout.Default()
	}
	e.current = km
	e.saved = km
	e.logger.Debug("keymap initialized", "keys", km.Len())
	return e
}

// Current returns the live keymap.
func (e *Engine) Current() layout.Keymap { return e.current }

// Saved returns the last committed keymap.
func (e *Engine) Saved() layout.Keymap { return e.saved }

// UpdateKey assigns the code labelled raw to p in the current keymap and
// returns it. Unknown labels assign keycode.Reserved. Positions with a
// negative row or column are rejected and leave the keymap unchanged.
func (e *Engine) UpdateKey(p layout.Position, raw string) (keycode.Code, error) {
	if !p.Valid() {
		e.logger.Warn("rejected key update", "label", raw, "position", p.String())
		return keycode.Reserved, &Error{Op: "update", Kind: KindInvalidPosition, Err: fmt.Errorf("%w: %s", ErrInvalidPosition, p)}
	}
	code := keycode.ParseLabel(raw)
	if code == keycode.Reserved {
		e.logger.Debug("unknown key label", "label", raw, "position", p.String())
	}
	e.current = e.current.With(p, code)
	return code, nil
}

// HasUnsavedChanges reports whether current differs from saved.
func (e *Engine) HasUnsavedChanges() bool {
	return !e.current.Equal(e.saved)
}

// Save writes the current keymap to the store and, on success, commits it as
// the saved keymap. On failure neither keymap changes.
func (e *Engine) Save() error {
	data, err := Marshal(e.current)
	if err != nil {
		return &Error{Op: "save", Kind: KindWriteFailed, Key: StorageKey, Err: err}
	}
	if e.store == nil {
		return storeError("save", KindStoreUnavailable, nil)
	}
	if err := e.store.Set(StorageKey, data); err != nil {
		return storeError("save", KindWriteFailed, err)
	}
	e.saved = e.current
	e.logger.Info("layout saved", "keys", e.current.Len())
	return nil
}

// Load replaces both keymaps with the stored layout, discarding unsaved
// edits. On failure neither keymap changes.
func (e *Engine) Load() error {
	km, err := e.read("load")
	if err != nil {
		return err
	}
	e.current = km
	e.saved = km
	e.logger.Info("layout loaded", "keys", km.Len())
	return nil
}

// Reset discards unsaved edits. It always succeeds.
func (e *Engine) Reset() error {
	e.current = e.saved
	return nil
}

// FactoryReset removes the stored layout and sets both keymaps to the factory
// default. If the store cannot remove the key, neither keymap changes.
func (e *Engine) FactoryReset() error {
	if e.store == nil {
		return storeError("factory reset", KindStoreUnavailable, nil)
	}
	if err := e.store.Remove(StorageKey); err != nil {
		return storeError("factory reset", KindRemoveFailed, err)
	}
	def := layout.Default()
	e.current = def
	e.saved = def
	e.logger.Info("layout reset to factory default")
	return nil
}

// Export builds the export document for the current keymap.
func (e *Engine) Export() export.Document {
	return export.Build(e.current, e.now())
}

func (e *Engine) read(op string) (layout.Keymap, error) {
	if e.store == nil {
		return layout.Keymap{}, storeError(op, KindStoreUnavailable, nil)
	}
	data, ok, err := e.store.Get(StorageKey)
	if err != nil {
		return layout.Keymap{}, storeError(op, KindReadFailed, err)
	}
	if !ok {
		return layout.Keymap{}, &Error{Op: op, Kind: KindNoSavedData, Key: StorageKey, Err: ErrNoSavedData}
	}
	e.logger.Debug("found saved layout", "bytes", len(data))
	km, err := Unmarshal(data)
	if err != nil {
		return layout.Keymap{}, &Error{Op: op, Kind: KindCorruptData, Key: StorageKey, Err: err}
	}
	return km, nil
}
