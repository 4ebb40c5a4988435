package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileOpCreatesNestedDirectories(t *testing.T) {
	tmp := t.TempDir()
	op := &WriteFileOp{
		Path:    filepath.Join(tmp, "a", "b", "deep.txt"),
		Content: []byte("nested"),
		Mode:    0644,
	}

	require.NoError(t, op.Execute(context.Background()))

	content, err := os.ReadFile(op.Path)
	require.NoError(t, err)
	assert.Equal(t, "nested", string(content))
}

func TestWriteFileOpLeavesNoTempFilesBehind(t *testing.T) {
	tmp := t.TempDir()
	op := &WriteFileOp{
		Path:    filepath.Join(tmp, "out.txt"),
		Content: []byte("content"),
		Mode:    0644,
	}
	require.NoError(t, op.Execute(context.Background()))

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.txt", entries[0].Name())
}

func TestWriteFileOpHonorsCancelledContext(t *testing.T) {
	tmp := t.TempDir()
	op := &WriteFileOp{
		Path:    filepath.Join(tmp, "out.txt"),
		Content: []byte("content"),
		Mode:    0644,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, op.Execute(ctx))
	_, statErr := os.Stat(op.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFileOpDescription(t *testing.T) {
	op := &WriteFileOp{Path: "/p/file.txt", Content: []byte("hello world")}
	desc := op.Description()
	assert.Contains(t, desc, "/p/file.txt")
	assert.Contains(t, desc, "11 bytes")
}
