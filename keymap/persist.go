package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Alia5/dactylkeys/keycode"
	"github.com/Alia5/dactylkeys/layout"
)

// StorageKey is the store key holding the saved layout.
const StorageKey = "dactyl_keymap"

type entry struct {
	pos  layout.Position
	code keycode.Code
}

func (e entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{[2]int{e.pos.Row, e.pos.Col}, e.code})
}

// Marshal encodes km in the preferred persisted shape: an array of
// [[row, col], code] pairs in row-major order. Negative positions cannot be
// decoded again and are refused.
func Marshal(km layout.Keymap) (string, error) {
	positions := km.Positions()
	entries := make([]entry, len(positions))
	for i, p := range positions {
		if !p.Valid() {
			return "", fmt.Errorf("%w: %s", ErrInvalidPosition, p)
		}
		entries[i] = entry{pos: p, code: km.Get(p)}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Unmarshal decodes a persisted layout. The pair array shape is tried first,
// then the legacy object shape keyed by position. Any other input returns an
// error wrapping ErrCorruptData.
func Unmarshal(data string) (layout.Keymap, error) {
	trimmed := bytes.TrimSpace([]byte(data))
	if len(trimmed) == 0 || (trimmed[0] != '[' && trimmed[0] != '{') {
		return layout.Keymap{}, fmt.Errorf("%w: expected a JSON array or object", ErrCorruptData)
	}

	km, arrErr := unmarshalPairs(trimmed)
	if arrErr == nil {
		return km, nil
	}
	km, objErr := unmarshalLegacy(trimmed)
	if objErr == nil {
		return km, nil
	}
	if trimmed[0] == '{' {
		return layout.Keymap{}, fmt.Errorf("%w: %v", ErrCorruptData, objErr)
	}
	return layout.Keymap{}, fmt.Errorf("%w: %v", ErrCorruptData, arrErr)
}

func unmarshalPairs(data []byte) (layout.Keymap, error) {
	var pairs [][]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return layout.Keymap{}, err
	}
	keys := make(map[layout.Position]keycode.Code, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return layout.Keymap{}, fmt.Errorf("entry %d: want [position, code], got %d elements", i, len(pair))
		}
		var rc []int
		if err := json.Unmarshal(pair[0], &rc); err != nil {
			return layout.Keymap{}, fmt.Errorf("entry %d position: %w", i, err)
		}
		if len(rc) != 2 || rc[0] < 0 || rc[1] < 0 {
			return layout.Keymap{}, fmt.Errorf("entry %d: invalid position %v", i, rc)
		}
		code, err := decodeCode(pair[1])
		if err != nil {
			return layout.Keymap{}, fmt.Errorf("entry %d code: %w", i, err)
		}
		keys[layout.Position{Row: rc[0], Col: rc[1]}] = code
	}
	return layout.NewKeymap(keys), nil
}

func unmarshalLegacy(data []byte) (layout.Keymap, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return layout.Keymap{}, err
	}
	if obj == nil {
		return layout.Keymap{}, errors.New("null object")
	}
	keys := make(map[layout.Position]keycode.Code, len(obj))
	for k, raw := range obj {
		p, err := parsePositionKey(k)
		if err != nil {
			return layout.Keymap{}, err
		}
		code, err := decodeCode(raw)
		if err != nil {
			return layout.Keymap{}, fmt.Errorf("key %q: %w", k, err)
		}
		keys[p] = code
	}
	return layout.NewKeymap(keys), nil
}

// parsePositionKey accepts "0,0", "(0, 0)" and "[0,0]".
func parsePositionKey(k string) (layout.Position, error) {
	s := strings.TrimSpace(k)
	s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	s = strings.TrimPrefix(strings.TrimSuffix(s, "]"), "[")
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return layout.Position{}, fmt.Errorf("invalid position key %q", k)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil || r < 0 {
		return layout.Position{}, fmt.Errorf("invalid position key %q", k)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil || c < 0 {
		return layout.Position{}, fmt.Errorf("invalid position key %q", k)
	}
	return layout.Position{Row: r, Col: c}, nil
}

// decodeCode accepts a variant name, a HID byte number, or a legacy key
// config object carrying a display label.
func decodeCode(raw json.RawMessage) (keycode.Code, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, errors.New("missing code")
	}
	switch raw[0] {
	case '"':
		var c keycode.Code
		if err := json.Unmarshal(raw, &c); err != nil {
			return 0, err
		}
		return c, nil
	case '{':
		var legacy struct {
			Label *string `json:"label"`
		}
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return 0, err
		}
		if legacy.Label == nil {
			return 0, errors.New("key config without label")
		}
		return keycode.ParseLabel(*legacy.Label), nil
	default:
		var n uint8
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, fmt.Errorf("invalid code %s", raw)
		}
		return keycode.Decode(n), nil
	}
}
