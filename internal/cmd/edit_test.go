package cmd_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/dactylkeys/export"
	"github.com/Alia5/dactylkeys/internal/cmd"
	"github.com/Alia5/dactylkeys/keycode"
	"github.com/Alia5/dactylkeys/layout"
)

func TestEditSession(t *testing.T) {
	script := `
# fresh session
get 0 0
set 0 0 X
status
save
status
set 2 0 "L Ctrl"
set 3 3 ""
get 2 0
reset
get 2 0
quit
`
	s, out := newSession(t, "file", script)
	require.NoError(t, (&cmd.Edit{Format: "json"}).Run(s))

	text := out.String()
	assert.Contains(t, text, "(0,0) = Esc (KeyEscape, 0x29)")
	assert.Contains(t, text, "(0,0) = X (KeyX, 0x1B)")
	assert.Contains(t, text, "unsaved changes\nsaved\nno unsaved changes")
	assert.Contains(t, text, "(2,0) = L Ctrl (KeyLeftCtrl, 0xE0)")
	assert.Contains(t, text, "(3,3) = _ (Empty, 0xFF)")
	assert.Contains(t, text, "unsaved changes discarded")
	assert.Contains(t, text, "(2,0) = Caps (KeyCapsLock, 0x39)")

	reopen(t, s)
	e, err := s.Engine()
	require.NoError(t, err)
	assert.Equal(t, keycode.KeyX, e.Current().Get(layout.Position{Row: 0, Col: 0}))
	assert.Equal(t, keycode.KeyCapsLock, e.Current().Get(layout.Position{Row: 2, Col: 0}))
}

func TestEditQuitWithUnsavedChanges(t *testing.T) {
	s, out := newSession(t, "memory", "set 0 0 X\nquit\nquit\nset 0 0 Q\n")
	require.NoError(t, (&cmd.Edit{}).Run(s))
	assert.Contains(t, out.String(), "quit again to discard")
	assert.NotContains(t, out.String(), "KeyQ", "second quit ends the session")
}

func TestEditQuitWarningResets(t *testing.T) {
	s, out := newSession(t, "memory", "set 0 0 X\nquit\nstatus\nquit\n")
	require.NoError(t, (&cmd.Edit{}).Run(s))
	assert.Equal(t, 2, strings.Count(out.String(), "quit again to discard"))
}

func TestEditErrorsContinue(t *testing.T) {
	script := `
set 0
set a 1 X
set 0 0 "unterminated
frobnicate
load
set 0 0 Tab
`
	s, out := newSession(t, "file", script)
	require.NoError(t, (&cmd.Edit{}).Run(s))

	text := out.String()
	assert.Contains(t, text, "error: invalid column")
	assert.Contains(t, text, `error: invalid row "a"`)
	assert.Contains(t, text, "error: invalid quoted label")
	assert.Contains(t, text, `error: unknown command "frobnicate"`)
	assert.Contains(t, text, "no_saved_data")
	assert.Contains(t, text, "(0,0) = Tab (KeyTab, 0x2B)")
}

func TestEditUnknownLabelAndOffMatrix(t *testing.T) {
	s, out := newSession(t, "memory", "set 9 9 Banana\n")
	require.NoError(t, (&cmd.Edit{}).Run(s))
	assert.Contains(t, out.String(), "warning: (9,9) is not a physical key")
	assert.Contains(t, out.String(), "(9,9) = · (Reserved, 0xE8)")
}

func TestEditFactoryResetAndExport(t *testing.T) {
	dir := t.TempDir()
	s, out := newSession(t, "sqlite", "set 0 0 X\nsave\nfactory-reset\nexport "+dir+" yaml\nkeys numpad\nshow\nhelp\n")
	require.NoError(t, (&cmd.Edit{Output: t.TempDir(), Format: "json"}).Run(s))

	text := out.String()
	assert.Contains(t, text, "factory default restored")
	assert.FileExists(t, filepath.Join(dir, export.FileNameFor(export.FormatYAML)))
	assert.Contains(t, text, "Num Ent")
	assert.Contains(t, text, "74 keys")
	assert.Contains(t, text, "factory-reset")

	reopen(t, s)
	e, err := s.Engine()
	require.NoError(t, err)
	assert.Equal(t, keycode.KeyEscape, e.Current().Get(layout.Position{Row: 0, Col: 0}))
}
