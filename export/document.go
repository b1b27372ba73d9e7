// Package export renders a keymap as a versioned, deterministic document.
package export

import (
	"time"

	"github.com/Alia5/dactylkeys/keycode"
	"github.com/Alia5/dactylkeys/layout"
)

const (
	Version    = "1.0"
	DeviceName = "Dactyl Manuform 5x7"
)

type Document struct {
	Metadata Metadata `json:"metadata" yaml:"metadata" toml:"metadata"`
	Keys     []Key    `json:"keys" yaml:"keys" toml:"keys"`
}

type Metadata struct {
	Version    string    `json:"version" yaml:"version" toml:"version"`
	DeviceName string    `json:"deviceName" yaml:"deviceName" toml:"deviceName"`
	ExportedAt time.Time `json:"exportedAt" yaml:"exportedAt" toml:"exportedAt"`
	TotalKeys  int       `json:"totalKeys" yaml:"totalKeys" toml:"totalKeys"`
}

type Key struct {
	Position    Position `json:"position" yaml:"position" toml:"position"`
	Label       string   `json:"label" yaml:"label" toml:"label"`
	NumericCode uint8    `json:"numericCode" yaml:"numericCode" toml:"numericCode"`
}

type Position struct {
	Row int `json:"row" yaml:"row" toml:"row"`
	Col int `json:"col" yaml:"col" toml:"col"`
}

// Build projects km into a document. Keys are ordered by (row, col).
func Build(km layout.Keymap, now time.Time) Document {
	positions := km.Positions()
	keys := make([]Key, 0, len(positions))
	for _, p := range positions {
		code := km.Get(p)
		keys = append(keys, Key{
			Position:    Position{Row: p.Row, Col: p.Col},
			Label:       keycode.LabelOf(code),
			NumericCode: keycode.Encode(code),
		})
	}
	return Document{
		Metadata: Metadata{
			Version:    Version,
			DeviceName: DeviceName,
			ExportedAt: now.UTC(),
			TotalKeys:  len(keys),
		},
		Keys: keys,
	}
}
