package fs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	memFs := afero.NewMemMapFs()

	err := WriteFileAtomic(memFs, "/state/records/hat.json", []byte(`{"a":1}`))
	require.NoError(t, err)

	data, err := afero.ReadFile(memFs, "/state/records/hat.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	memFs := afero.NewMemMapFs()

	require.NoError(t, WriteFileAtomic(memFs, "/f.json", []byte("old")))
	require.NoError(t, WriteFileAtomic(memFs, "/f.json", []byte("new")))

	data, err := afero.ReadFile(memFs, "/f.json")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	memFs := afero.NewMemMapFs()

	require.NoError(t, WriteFileAtomic(memFs, "/dir/f.json", []byte("x")))

	entries, err := afero.ReadDir(memFs, "/dir")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f.json", entries[0].Name())
}

func TestWriteJSONAtomic(t *testing.T) {
	memFs := afero.NewMemMapFs()

	err := WriteJSONAtomic(memFs, "/doc.json", map[string]string{"name": "top hat"})
	require.NoError(t, err)

	data, err := afero.ReadFile(memFs, "/doc.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"top hat"}`, string(data))
	assert.Equal(t, byte('\n'), data[len(data)-1])
}
