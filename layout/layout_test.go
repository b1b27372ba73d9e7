package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/dactylkeys/keycode"
	"github.com/Alia5/dactylkeys/layout"
)

func pos(row, col int) layout.Position {
	return layout.Position{Row: row, Col: col}
}

func TestDefaultLayout(t *testing.T) {
	km := layout.Default()
	require.Equal(t, 74, km.Len())
	assert.Len(t, layout.Slots(), 74)

	tests := []struct {
		p     layout.Position
		label string
	}{
		{pos(0, 0), "Esc"},
		{pos(0, 6), "6"},
		{pos(0, 13), "BKSP"},
		{pos(1, 0), "Tab"},
		{pos(1, 13), `\`},
		{pos(2, 0), "Caps"},
		{pos(2, 12), "Enter"},
		{pos(3, 0), "L Shift"},
		{pos(3, 13), "R Shift"},
		{pos(4, 3), "Lower"},
		{pos(4, 10), "Raise"},
		{pos(4, 13), "R Ctrl"},
		{pos(5, 5), "Home"},
		{pos(7, 5), "Space"},
		{pos(7, 6), "BKSP"},
		{pos(5, 8), "←"},
		{pos(6, 7), "↑"},
		{pos(7, 7), "Del"},
		{pos(7, 8), "Enter"},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			assert.Equal(t, tt.label, km.Get(tt.p).Label())
		})
	}

	code, ok := km.Lookup(pos(2, 13))
	assert.True(t, ok, "(2,13) is a physical slot")
	assert.Equal(t, keycode.Reserved, code)

	for _, p := range km.Positions() {
		assert.True(t, layout.Contains(p), "%s is not a physical slot", p)
	}
}

func TestDefaultIsDeterministic(t *testing.T) {
	assert.True(t, layout.Default().Equal(layout.Default()))
}

func TestKeymapWithDoesNotMutate(t *testing.T) {
	base := layout.Default()
	edited := base.With(pos(0, 0), keycode.KeyX)

	assert.Equal(t, keycode.KeyEscape, base.Get(pos(0, 0)))
	assert.Equal(t, keycode.KeyX, edited.Get(pos(0, 0)))
	assert.False(t, base.Equal(edited))
	assert.True(t, base.Equal(edited.With(pos(0, 0), keycode.KeyEscape)))
}

func TestKeymapZeroValue(t *testing.T) {
	var km layout.Keymap
	assert.Equal(t, 0, km.Len())
	assert.Equal(t, keycode.Reserved, km.Get(pos(0, 0)))
	assert.True(t, km.Equal(layout.NewKeymap(nil)))
	assert.Empty(t, km.Positions())
	assert.NotNil(t, km.Map())

	km = km.With(pos(1, 1), keycode.KeyA)
	assert.Equal(t, 1, km.Len())
}

func TestKeymapEquality(t *testing.T) {
	a := layout.NewKeymap(map[layout.Position]keycode.Code{pos(0, 0): keycode.KeyA})
	b := layout.NewKeymap(map[layout.Position]keycode.Code{pos(0, 0): keycode.KeyA, pos(0, 1): keycode.Reserved})
	assert.False(t, a.Equal(b), "an explicit sentinel entry is not the same as a missing one")
	assert.False(t, b.Equal(a))
}

func TestNewKeymapCopiesInput(t *testing.T) {
	src := map[layout.Position]keycode.Code{pos(0, 0): keycode.KeyA}
	km := layout.NewKeymap(src)
	src[pos(0, 0)] = keycode.KeyB
	assert.Equal(t, keycode.KeyA, km.Get(pos(0, 0)))

	m := km.Map()
	m[pos(0, 0)] = keycode.KeyC
	assert.Equal(t, keycode.KeyA, km.Get(pos(0, 0)))
}

func TestPositionsSorted(t *testing.T) {
	km := layout.NewKeymap(map[layout.Position]keycode.Code{
		pos(1, 0): keycode.KeyQ,
		pos(0, 3): keycode.Key3,
		pos(0, 0): keycode.KeyEscape,
	})
	assert.Equal(t, []layout.Position{pos(0, 0), pos(0, 3), pos(1, 0)}, km.Positions())
}

func TestClusters(t *testing.T) {
	tests := []struct {
		p    layout.Position
		want layout.Cluster
		ok   bool
	}{
		{pos(0, 0), layout.LeftHand, true},
		{pos(0, 7), layout.RightHand, true},
		{pos(3, 7), 0, false},
		{pos(4, 5), 0, false},
		{pos(5, 6), layout.LeftThumb, true},
		{pos(5, 7), 0, false},
		{pos(6, 7), layout.RightThumb, true},
		{pos(8, 0), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			c, ok := layout.ClusterOf(tt.p)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, c)
			}
		})
	}

	rows := layout.LeftHand.Rows()
	require.Len(t, rows, 5)
	assert.Len(t, rows[0], 7)
	assert.Len(t, rows[3], 6)
	assert.Len(t, rows[4], 4)
	assert.Equal(t, "right thumb", layout.RightThumb.String())
}
