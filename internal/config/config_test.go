package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, FormatMarkdown, cfg.Format)
}

func TestLoadMergesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("format: json\ninclude_raw_dump: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jobsum.yml"), content, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.IncludeRawDump)
	assert.False(t, cfg.AnnotateInline)
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jobsum.yml"), []byte("format: [broken"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	cfg := Default()
	ApplyFlags(&cfg, FlagValues{
		Format:         StringFlag{Value: FormatJSON, Set: true},
		AnnotateInline: BoolFlag{Value: true, Set: true},
	})

	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.AnnotateInline)
	assert.False(t, cfg.IncludeRawDump, "unset flags leave config untouched")
}
