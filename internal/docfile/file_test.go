package docfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yamlsimple/internal/flat"
	"yamlsimple/internal/rewrite"
)

const doc = "# settings\nvariables:\n    instance_name: 'app1'\n"

func newTestStore() *Store {
	return NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestParseFile(t *testing.T) {
	s := newTestStore()

	m, err := s.ParseFile(writeDoc(t, doc))
	require.NoError(t, err)

	v, ok := m.Get("variables.instance_name")
	assert.True(t, ok)
	assert.Equal(t, "app1", v)
}

func TestParseFile_Duplicate(t *testing.T) {
	_, err := newTestStore().ParseFile(writeDoc(t, "a: 1\na: 2\n"))
	require.ErrorIs(t, err, flat.ErrDuplicateKey)
}

func TestUpdateFile(t *testing.T) {
	s := newTestStore()
	path := writeDoc(t, doc)

	require.NoError(t, s.UpdateFile(path, "variables.instance_name", "test44"))
	assert.Equal(t, "# settings\nvariables:\n    instance_name: 'test44'\n", readDoc(t, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	err = s.UpdateFile(path, "variables.missing", "x")
	require.ErrorIs(t, err, rewrite.ErrKeyNotFound)
}

func TestAddFile(t *testing.T) {
	s := newTestStore()
	path := writeDoc(t, doc)

	require.NoError(t, s.AddFile(path, "variables.region", "eu"))
	assert.Equal(t, "variables:\n    region: 'eu'\n    instance_name: 'app1'", readDoc(t, path))

	found, err := s.CheckFile(path, "variables.region")
	require.NoError(t, err)
	assert.True(t, found)

	// Adding an existing key does not touch the file.
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	require.NoError(t, s.AddFile(path, "variables.instance_name", "other"))
	assert.Equal(t, doc, readDoc(t, path))
}

func TestMissingFile(t *testing.T) {
	s := newTestStore()
	path := filepath.Join(t.TempDir(), "absent.yml")

	m, err := s.ParseFile(path)
	require.NoError(t, err)
	assert.Zero(t, m.Len())

	found, err := s.CheckFile(path, "variables.instance_name")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.UpdateFile(path, "a", "b"))
	require.NoError(t, s.AddFile(path, "a", "b"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewStore_DefaultLogger(t *testing.T) {
	assert.NotNil(t, NewStore(nil).Logger)
}
