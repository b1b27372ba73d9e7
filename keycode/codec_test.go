package keycode_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/dactylkeys/keycode"
)

func TestDecodeIsTotal(t *testing.T) {
	reservedBlocks := []struct{ lo, hi int }{
		{0x00, 0x00},
		{0xA5, 0xAF},
		{0xDE, 0xDF},
		{0xEB, 0xFE},
	}
	inReserved := func(b int) bool {
		for _, r := range reservedBlocks {
			if b >= r.lo && b <= r.hi {
				return true
			}
		}
		return false
	}

	for b := 0; b < 256; b++ {
		c := keycode.Decode(byte(b))
		got := keycode.Encode(c)
		if inReserved(b) {
			assert.Equal(t, keycode.Reserved, c, "byte 0x%02X", b)
			assert.Equal(t, byte(keycode.Reserved), got, "byte 0x%02X", b)
			assert.False(t, keycode.Named(keycode.Code(b)), "byte 0x%02X", b)
			continue
		}
		assert.Equal(t, byte(b), got, "byte 0x%02X should round-trip", b)
		assert.True(t, keycode.Named(c), "byte 0x%02X", b)
	}
}

func TestDecodeKnownBytes(t *testing.T) {
	tests := []struct {
		b    byte
		want keycode.Code
	}{
		{0x04, keycode.KeyA},
		{0x28, keycode.KeyEnter},
		{0x29, keycode.KeyEscape},
		{0xE0, keycode.KeyLeftCtrl},
		{0xE8, keycode.Reserved},
		{0xE9, keycode.Raise},
		{0xEA, keycode.Lower},
		{0xFF, keycode.Empty},
		{0x00, keycode.Reserved},
		{0xAA, keycode.Reserved},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keycode.Decode(tt.b), "byte 0x%02X", tt.b)
	}
}

func TestLabelRoundTrip(t *testing.T) {
	labeled := 0
	for _, c := range keycode.All() {
		if !keycode.HasLabel(c) {
			assert.Equal(t, keycode.UnknownLabel, keycode.LabelOf(c), c.String())
			continue
		}
		labeled++
		assert.Equal(t, c, keycode.ParseLabel(keycode.LabelOf(c)), "label %q of %s", keycode.LabelOf(c), c)
	}
	assert.Greater(t, labeled, 90)
}

func TestLabels(t *testing.T) {
	tests := []struct {
		code  keycode.Code
		label string
	}{
		{keycode.KeyA, "A"},
		{keycode.KeyEnter, "Enter"},
		{keycode.KeyEscape, "Esc"},
		{keycode.KeySpace, "Space"},
		{keycode.KeyBackspace, "BKSP"},
		{keycode.KeyBackslash, `\`},
		{keycode.KeyLeftCtrl, "L Ctrl"},
		{keycode.KeyRight, "→"},
		{keycode.KeyKpEnter, "Num Ent"},
		{keycode.Raise, "Raise"},
		{keycode.Empty, ""},
		{keycode.Reserved, "Unknown"},
		{keycode.KeyF13, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.label, keycode.LabelOf(tt.code))
			assert.Equal(t, tt.label, tt.code.Label())
		})
	}
}

func TestParseLabel(t *testing.T) {
	assert.Equal(t, keycode.KeyX, keycode.ParseLabel("X"))
	assert.Equal(t, keycode.KeyEnter, keycode.ParseLabel("Enter"))
	assert.Equal(t, keycode.Empty, keycode.ParseLabel(""))
	assert.Equal(t, keycode.Reserved, keycode.ParseLabel("not-a-real-label"))
	assert.Equal(t, keycode.Reserved, keycode.ParseLabel("x"), "lookup is case-sensitive")
	assert.Equal(t, keycode.Reserved, keycode.ParseLabel("ESC"))
	assert.Equal(t, keycode.Reserved, keycode.ParseLabel(keycode.UnknownLabel))
}

func TestNames(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range keycode.All() {
		name := c.String()
		require.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		back, ok := keycode.ParseName(name)
		assert.True(t, ok)
		assert.Equal(t, c, back)
	}
	assert.Len(t, keycode.All(), 222)
	assert.Equal(t, "Code(0x00)", keycode.Code(0).String())

	_, ok := keycode.ParseName("KeyNope")
	assert.False(t, ok)
}

func TestTextEncoding(t *testing.T) {
	b, err := json.Marshal(map[string]keycode.Code{"k": keycode.KeyEscape})
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"KeyEscape"}`, string(b))

	tests := []struct {
		in      string
		want    keycode.Code
		wantErr bool
	}{
		{in: "KeyEscape", want: keycode.KeyEscape},
		{in: "Raise", want: keycode.Raise},
		{in: "41", want: keycode.KeyEscape},
		{in: "0x29", want: keycode.KeyEscape},
		{in: "0xA5", want: keycode.Reserved},
		{in: "256", wantErr: true},
		{in: "Escape", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c keycode.Code
			err := c.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}

	text, err := keycode.Code(0xA5).MarshalText()
	require.NoError(t, err)
	var back keycode.Code
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, keycode.Reserved, back)
}

func TestCategories(t *testing.T) {
	cats := keycode.Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, "Letters", cats[0].Name)
	assert.Len(t, cats[0].Codes, 26)

	for _, cat := range cats {
		for _, c := range cat.Codes {
			assert.True(t, keycode.HasLabel(c), "%s in %s has no label", c, cat.Name)
		}
	}

	cats[0].Codes[0] = keycode.Reserved
	again := keycode.Categories()
	assert.Equal(t, keycode.KeyA, again[0].Codes[0], "Categories must return copies")

	numpad, ok := keycode.LookupCategory("numpad")
	require.True(t, ok)
	assert.Contains(t, numpad.Codes, keycode.KeyKpEnter)

	_, ok = keycode.LookupCategory("Macros")
	assert.False(t, ok)
}
