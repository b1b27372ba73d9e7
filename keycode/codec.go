// Package keycode maps HID keyboard usage bytes to symbolic codes and display labels.
//
// Every lookup is derived from one table (see usages), built once when the
// package is initialised and never modified afterwards. Decoding a byte is
// total: bytes without a named usage decode to Reserved. Parsing a label is
// exact and case-sensitive: labels without a match parse to Reserved.
package keycode

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownLabel is returned by LabelOf for codes without a display label.
const UnknownLabel = "Unknown"

// Code is a symbolic keyboard code. Its value is the HID usage byte.
type Code uint8

type usage struct {
	code     Code
	name     string
	label    string
	hasLabel bool
}

func named(c Code, name string) usage {
	return usage{code: c, name: name}
}

func labeled(c Code, name, label string) usage {
	return usage{code: c, name: name, label: label, hasLabel: true}
}

type tables struct {
	byByte   [256]Code
	named    [256]bool
	names    [256]string
	labels   [256]string
	hasLabel [256]bool
	byLabel  map[string]Code
	byName   map[string]Code
	ordered  []Code
}

var lookup = build(usages)

// build panics on a duplicated byte or name; both would make the byte table
// ambiguous and can only come from a broken usages table.
func build(list []usage) *tables {
	t := &tables{
		byLabel: make(map[string]Code, len(list)),
		byName:  make(map[string]Code, len(list)),
	}
	for i := range t.byByte {
		t.byByte[i] = Reserved
	}
	for _, u := range list {
		b := u.code
		if t.named[b] {
			panic(fmt.Sprintf("keycode: byte 0x%02X assigned to both %s and %s", uint8(b), t.names[b], u.name))
		}
		if _, dup := t.byName[u.name]; dup {
			panic("keycode: duplicate name " + u.name)
		}
		t.byByte[b] = u.code
		t.named[b] = true
		t.names[b] = u.name
		t.byName[u.name] = u.code
		if u.hasLabel {
			t.labels[b] = u.label
			t.hasLabel[b] = true
			if _, taken := t.byLabel[u.label]; !taken {
				t.byLabel[u.label] = u.code
			}
		}
	}
	for i := range t.named {
		if t.named[i] {
			t.ordered = append(t.ordered, Code(i))
		}
	}
	return t
}

// Decode returns the code for a HID usage byte.
// Unassigned bytes decode to Reserved.
func Decode(b byte) Code {
	return lookup.byByte[b]
}

// Encode returns the one-byte identifier of c.
func Encode(c Code) byte {
	return byte(c)
}

// LabelOf returns the display label of c, or UnknownLabel.
func LabelOf(c Code) string {
	if lookup.hasLabel[c] {
		return lookup.labels[c]
	}
	return UnknownLabel
}

// ParseLabel returns the code whose label is exactly s, or Reserved.
func ParseLabel(s string) Code {
	if c, ok := lookup.byLabel[s]; ok {
		return c
	}
	return Reserved
}

// ParseName returns the code with the given variant name (e.g. "KeyEscape").
func ParseName(s string) (Code, bool) {
	c, ok := lookup.byName[s]
	return c, ok
}

// HasLabel reports whether c has a display label.
func HasLabel(c Code) bool {
	return lookup.hasLabel[c]
}

// Named reports whether c is a named variant, i.e. whether Decode(c.Byte()) == c.
func Named(c Code) bool {
	return lookup.named[c]
}

// All returns every named variant in byte order.
func All() []Code {
	out := make([]Code, len(lookup.ordered))
	copy(out, lookup.ordered)
	return out
}

// Byte returns the HID usage byte of c.
func (c Code) Byte() byte { return Encode(c) }

// Label returns the display label of c, or UnknownLabel.
func (c Code) Label() string { return LabelOf(c) }

// String returns the variant name, or a hex form for unnamed values.
func (c Code) String() string {
	if lookup.named[c] {
		return lookup.names[c]
	}
	return fmt.Sprintf("Code(0x%02X)", uint8(c))
}

// MarshalText encodes c as its variant name. Unnamed values are written as a
// hex byte, which decodes back to Reserved.
func (c Code) MarshalText() ([]byte, error) {
	if lookup.named[c] {
		return []byte(lookup.names[c]), nil
	}
	return []byte(fmt.Sprintf("0x%02X", uint8(c))), nil
}

// UnmarshalText accepts a variant name or a decimal/0x-prefixed byte value.
func (c *Code) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if v, ok := lookup.byName[s]; ok {
		*c = v
		return nil
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return fmt.Errorf("keycode: invalid code %q", s)
	}
	*c = Decode(byte(n))
	return nil
}
