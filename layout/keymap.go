// Package layout describes the physical key matrix of a Dactyl Manuform 5x7
// and the position to code mapping assigned to it.
package layout

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/Alia5/dactylkeys/keycode"
)

// Position identifies a physical key slot by matrix row and column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Valid reports whether p has non-negative coordinates. It does not check
// that p is a physical key; see Contains.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Col >= 0
}

// Compare orders positions row-major.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, o.Col)
}

// Keymap is an immutable snapshot of position to code assignments.
// The zero value is an empty keymap.
type Keymap struct {
	keys map[Position]keycode.Code
}

// NewKeymap returns a keymap holding a copy of entries.
func NewKeymap(entries map[Position]keycode.Code) Keymap {
	return Keymap{keys: maps.Clone(entries)}
}

// Get returns the code at p, or keycode.Reserved when p is not assigned.
func (k Keymap) Get(p Position) keycode.Code {
	if c, ok := k.keys[p]; ok {
		return c
	}
	return keycode.Reserved
}

// Lookup returns the code at p and whether p is assigned.
func (k Keymap) Lookup(p Position) (keycode.Code, bool) {
	c, ok := k.keys[p]
	return c, ok
}

// With returns a copy of k with p assigned to c. k itself is not modified.
func (k Keymap) With(p Position, c keycode.Code) Keymap {
	next := make(map[Position]keycode.Code, len(k.keys)+1)
	maps.Copy(next, k.keys)
	next[p] = c
	return Keymap{keys: next}
}

// Len returns the number of assigned positions.
func (k Keymap) Len() int {
	return len(k.keys)
}

// Equal reports whether both keymaps assign the same codes to the same positions.
func (k Keymap) Equal(o Keymap) bool {
	return maps.Equal(k.keys, o.keys)
}

// Positions returns the assigned positions sorted row-major.
func (k Keymap) Positions() []Position {
	return slices.SortedFunc(maps.Keys(k.keys), Position.Compare)
}

// Map returns a copy of the underlying assignments.
func (k Keymap) Map() map[Position]keycode.Code {
	out := maps.Clone(k.keys)
	if out == nil {
		out = map[Position]keycode.Code{}
	}
	return out
}
