package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/dactylkeys/store"
)

func backends(t *testing.T) map[string]store.Store {
	t.Helper()
	dir := t.TempDir()

	db, err := store.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	onDisk, err := store.OpenSQLite(filepath.Join(dir, "db", "keymap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = onDisk.Close() })

	return map[string]store.Store{
		"memory":      store.NewMemory(),
		"file":        store.NewFile(filepath.Join(dir, "nested", "keymap.json")),
		"sqlite":      db,
		"sqlite-file": onDisk,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get("dactyl_keymap")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("dactyl_keymap", `[[[0,0],"KeyEscape"]]`))
			v, ok, err := s.Get("dactyl_keymap")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[[[0,0],"KeyEscape"]]`, v)

			require.NoError(t, s.Set("dactyl_keymap", "[]"))
			require.NoError(t, s.Set("key_library", "{}"))
			v, _, err = s.Get("dactyl_keymap")
			require.NoError(t, err)
			assert.Equal(t, "[]", v)

			require.NoError(t, s.Remove("dactyl_keymap"))
			_, ok, err = s.Get("dactyl_keymap")
			require.NoError(t, err)
			assert.False(t, ok)

			v, ok, err = s.Get("key_library")
			require.NoError(t, err)
			assert.True(t, ok, "removing one key keeps the others")
			assert.Equal(t, "{}", v)

			require.NoError(t, s.Remove("never-set"))
		})
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.json")
	require.NoError(t, store.NewFile(path).Set("k", "v"))

	v, ok, err := store.NewFile(path).Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must not be left behind")
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s := store.NewFile(path)
	_, _, err := s.Get("k")
	assert.Error(t, err)
	assert.Error(t, s.Set("k", "v"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not json", string(data), "a failed write must not clobber the file")
}

func TestUnavailable(t *testing.T) {
	var s store.Store = store.Unavailable{}
	_, _, err := s.Get("k")
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.ErrorIs(t, s.Set("k", "v"), store.ErrUnavailable)
	assert.ErrorIs(t, s.Remove("k"), store.ErrUnavailable)
}

type recorder struct {
	lines []string
	dirs  []bool
}

func (r *recorder) Log(in bool, data []byte) {
	r.dirs = append(r.dirs, in)
	r.lines = append(r.lines, string(data))
}

func TestTraced(t *testing.T) {
	rec := &recorder{}
	s := store.NewTraced(store.NewMemory(), rec)

	_, _, _ = s.Get("k")
	require.NoError(t, s.Set("k", "v"))
	_, _, _ = s.Get("k")
	require.NoError(t, s.Remove("k"))

	assert.Equal(t, []string{"get k: absent", "set k: v", "get k: v", "remove k"}, rec.lines)
	assert.Equal(t, []bool{true, false, true, false}, rec.dirs)

	failing := store.NewTraced(store.Unavailable{}, rec)
	assert.ErrorIs(t, failing.Set("k", "v"), store.ErrUnavailable)
	assert.True(t, strings.HasPrefix(rec.lines[len(rec.lines)-1], "set k: error"))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		path    string
		wantErr bool
	}{
		{backend: "file", path: filepath.Join(dir, "a.json")},
		{backend: "", path: filepath.Join(dir, "b.json")},
		{backend: "sqlite", path: filepath.Join(dir, "c.db")},
		{backend: "memory"},
		{backend: "none"},
		{backend: "file", wantErr: true},
		{backend: "sqlite", wantErr: true},
		{backend: "redis", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.backend+"|"+tt.path, func(t *testing.T) {
			s, closeFn, err := store.Open(tt.backend, tt.path)
			require.NotNil(t, closeFn)
			defer func() { _ = closeFn() }()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}
