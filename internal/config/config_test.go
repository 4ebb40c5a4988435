package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "templates:\n  dir: custom/templates\noutput:\n  dir: generated\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kindling.yml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "custom/templates", cfg.TemplatesDir)
	assert.Equal(t, "generated", cfg.OutputDir)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kindling.yml"),
		[]byte("output:\n  dir: out\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, Defaults().TemplatesDir, cfg.TemplatesDir)
}
