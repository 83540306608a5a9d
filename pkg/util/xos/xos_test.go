package xos_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpcmod/hpcmod/pkg/util/xos"
)

func TestWriteFileAtomic(t *testing.T) {
	fsys := afero.NewMemMapFs()

	err := xos.WriteFileAtomic(fsys, "deep/nested/file.txt", []byte("hello"), 0o644)
	require.NoError(t, err)

	content, err := afero.ReadFile(fsys, "deep/nested/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	// no temporary leftovers
	entries, err := afero.ReadDir(fsys, "deep/nested")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "file.txt", []byte("old"), 0o644))

	err := xos.WriteFileAtomic(fsys, "file.txt", []byte("new"), 0o644)
	require.NoError(t, err)

	content, err := afero.ReadFile(fsys, "file.txt")
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "present.txt", nil, 0o644))

	assert.True(t, xos.Exists(fsys, "present.txt"))
	assert.False(t, xos.Exists(fsys, "absent.txt"))
}
