package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gerunddev/notedoc/internal/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeContent = `{"type":"doc","content":[{"type":"heading","attrs":{"level":2},"content":[{"type":"text","text":"Sub"}]},` +
	`{"type":"bulletList","content":[{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"a"}]}]}]}]}`

func TestCopy(t *testing.T) {
	assert.Equal(t, "## Sub\n\n- a", Copy(treeContent))
	assert.Equal(t, "already *legacy*", Copy("already *legacy*"))
	assert.Equal(t, "", Copy(""))
}

func TestDocument(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		content  string
		expected string
	}{
		{name: "title and tree", title: "Plan", content: treeContent, expected: "# Plan\n\n## Sub\n\n- a"},
		{name: "no title", title: "", content: treeContent, expected: "## Sub\n\n- a"},
		{name: "blank title", title: "  ", content: "body", expected: "body"},
		{name: "empty body", title: "Plan", content: `{"type":"doc","content":[]}`, expected: "# Plan"},
		{name: "legacy body", title: "Plan", content: "- x", expected: "# Plan\n\n- x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Document(tt.title, tt.content))
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{title: "Weekly Plan", expected: "weekly-plan"},
		{title: "  Q3: goals & risks!  ", expected: "q3-goals-risks"},
		{title: "買い物リスト", expected: "買い物リスト"},
		{title: "", expected: "note"},
		{title: "???", expected: "note"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.title))
		})
	}
}

func TestWriteFile(t *testing.T) {
	exported := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	original := now
	now = func() time.Time { return exported }
	t.Cleanup(func() { now = original })

	store := notes.NewStore()
	n := store.Add("Weekly Plan", treeContent)

	t.Run("plain", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		path, err := WriteFile(dir, n, Options{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "weekly-plan.md"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Weekly Plan\n\n## Sub\n\n- a\n", string(data))
	})

	t.Run("front matter", func(t *testing.T) {
		dir := t.TempDir()
		path, err := WriteFile(dir, n, Options{FrontMatter: true})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		fm, body, err := ParseFrontMatter(string(data))
		require.NoError(t, err)
		assert.Equal(t, n.ID.String(), fm.ID)
		assert.Equal(t, "Weekly Plan", fm.Title)
		assert.True(t, exported.Equal(fm.Exported), "exported = %v", fm.Exported)
		assert.Equal(t, "# Weekly Plan\n\n## Sub\n\n- a\n", body)
	})
}

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantBody  string
		wantErr   bool
	}{
		{
			name:     "no front matter",
			input:    "# Title\nbody",
			wantBody: "# Title\nbody",
		},
		{
			name:      "front matter",
			input:     "---\ntitle: Groceries\nid: abc\n---\n\n- milk",
			wantTitle: "Groceries",
			wantBody:  "- milk",
		},
		{
			name:      "crlf",
			input:     "---\r\ntitle: T\r\n---\r\nbody",
			wantTitle: "T",
			wantBody:  "body",
		},
		{
			name:     "unterminated",
			input:    "---\ntitle: T\nbody",
			wantBody: "---\ntitle: T\nbody",
		},
		{
			name:    "invalid yaml",
			input:   "---\ntitle: [unclosed\n---\nbody",
			wantErr: true,
		},
		{
			name:     "empty",
			input:    "",
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := ParseFrontMatter(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, fm.Title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestTitleFromBody(t *testing.T) {
	title, body := TitleFromBody("# Plan\n\n- a")
	assert.Equal(t, "Plan", title)
	assert.Equal(t, "- a", body)

	title, body = TitleFromBody("## Sub\ntext")
	assert.Equal(t, "", title)
	assert.Equal(t, "## Sub\ntext", body)

	title, body = TitleFromBody("# Only")
	assert.Equal(t, "Only", title)
	assert.Equal(t, "", body)
}
