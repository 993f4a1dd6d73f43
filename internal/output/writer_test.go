package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "schema.ts")

	var stdout bytes.Buffer
	require.NoError(t, Write(path, []byte("export {};\n"), &stdout))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export {};\n", string(data))
	assert.Empty(t, stdout.String())
}

func TestWrite_Stdout(t *testing.T) {
	for _, path := range []string{"", "-"} {
		var stdout bytes.Buffer
		require.NoError(t, Write(path, []byte("hello"), &stdout))
		assert.Equal(t, "hello", stdout.String())
	}
}

func TestWrite_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := Write(filepath.Join(blocker, "schema.ts"), []byte("x"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}
