package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gerunddev/notedoc/internal/convert"
	"github.com/gerunddev/notedoc/internal/notes"
	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// Options controls how a note is written to disk
type Options struct {
	FrontMatter bool
}

// FrontMatter is the YAML header written above exported notes
type FrontMatter struct {
	ID       string    `yaml:"id,omitempty"`
	Title    string    `yaml:"title,omitempty"`
	Exported time.Time `yaml:"exported,omitempty"`
}

// now is overridden in tests
var now = time.Now

var slugUnsafe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Copy returns stored content as legacy text for the clipboard
func Copy(content string) string {
	return convert.ToMarkup(content)
}

// Document returns the export body: a level-one heading with the title,
// a blank line, then the note as legacy text.
func Document(title, content string) string {
	body := convert.ToMarkup(content)
	title = strings.TrimSpace(title)
	if title == "" {
		return body
	}
	if body == "" {
		return "# " + title
	}
	return "# " + title + "\n\n" + body
}

// Slug derives a file name stem from a title
func Slug(title string) string {
	slug := strings.Trim(slugUnsafe.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		return "note"
	}
	return slug
}

// WriteFile exports a note to <dir>/<slug>.md and returns the path written
func WriteFile(dir string, n *notes.Note, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	var buf bytes.Buffer
	if opts.FrontMatter {
		header, err := encodeFrontMatter(FrontMatter{
			ID:       n.ID.String(),
			Title:    n.Title,
			Exported: now().UTC().Truncate(time.Second),
		})
		if err != nil {
			return "", err
		}
		buf.WriteString(header)
	}
	buf.WriteString(Document(n.Title, n.Content))
	buf.WriteString("\n")

	path := filepath.Join(dir, Slug(n.Title)+".md")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func encodeFrontMatter(fm FrontMatter) (string, error) {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}
	return frontMatterDelim + "\n" + string(data) + frontMatterDelim + "\n", nil
}

// ParseFrontMatter splits a leading YAML front matter block from text.
// Text without front matter is returned unchanged with a zero FrontMatter.
func ParseFrontMatter(text string) (FrontMatter, string, error) {
	var fm FrontMatter

	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelim {
		return fm, text, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != frontMatterDelim {
			continue
		}

		header := strings.Join(lines[1:i], "\n")
		if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
			return FrontMatter{}, text, fmt.Errorf("failed to parse front matter: %w", err)
		}
		body := strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		return fm, body, nil
	}

	// Unterminated block is body text
	return fm, text, nil
}

// TitleFromBody takes the title from a leading level-one heading, as
// written by Document, and returns the rest of the body.
func TitleFromBody(body string) (string, string) {
	first, rest, _ := strings.Cut(body, "\n")
	if !strings.HasPrefix(first, "# ") {
		return "", body
	}
	return strings.TrimSpace(first[2:]), strings.TrimLeft(rest, "\n")
}
