package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		valued     []string
		wantFlags  map[string]string
		positional []string
	}{
		{
			name:       "positional only",
			args:       []string{"abc", "file.md"},
			wantFlags:  map[string]string{},
			positional: []string{"abc", "file.md"},
		},
		{
			name:       "boolean flag",
			args:       []string{"abc", "--front-matter"},
			wantFlags:  map[string]string{"front-matter": "true"},
			positional: []string{"abc"},
		},
		{
			name:       "valued flag",
			args:       []string{"--dir", "/tmp/out", "abc"},
			valued:     []string{"dir"},
			wantFlags:  map[string]string{"dir": "/tmp/out"},
			positional: []string{"abc"},
		},
		{
			name:       "equals form",
			args:       []string{"--dir=/tmp/out", "abc"},
			wantFlags:  map[string]string{"dir": "/tmp/out"},
			positional: []string{"abc"},
		},
		{
			name:       "valued flag without value",
			args:       []string{"abc", "--dir"},
			valued:     []string{"dir"},
			wantFlags:  map[string]string{"dir": "true"},
			positional: []string{"abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, positional := splitFlags(tt.args, tt.valued...)
			assert.Equal(t, tt.wantFlags, flags)
			assert.Equal(t, tt.positional, positional)
		})
	}
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte("# From file"), 0644))

	got, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "# From file", got)

	_, err = readInput(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)

	original := stdin
	stdin = strings.NewReader("- from stdin")
	t.Cleanup(func() { stdin = original })

	got, err = readInput("-")
	require.NoError(t, err)
	assert.Equal(t, "- from stdin", got)
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "weekly-plan", titleFromPath("/tmp/export/weekly-plan.md"))
	assert.Equal(t, "notes", titleFromPath("notes"))
	assert.Equal(t, "archive.tar", titleFromPath("archive.tar.gz"))
}
