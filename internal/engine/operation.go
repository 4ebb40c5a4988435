package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation is a filesystem action the engine can execute or, in dry-run
// mode, merely describe.
type Operation interface {
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp writes one generated file.
//
// The write is staged: content goes to a temp file in the target directory
// and is renamed into place, so a failure partway (disk full, interrupt)
// never leaves a truncated file at the target path.
type WriteFileOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".kindling-*")
	if err != nil {
		return fmt.Errorf("staging %s: %w", op.Path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(op.Content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", op.Path, err)
	}
	if err := tmp.Chmod(op.Mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting mode on %s: %w", op.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", op.Path, err)
	}

	if err := os.Rename(tmpName, op.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("placing %s: %w", op.Path, err)
	}
	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}
