package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/gerunddev/notedoc/internal/convert"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff between two texts, or "" when they are equal
func Unified(oldName, newName, old, new string) string {
	if old == new {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(oldName), withNewline(old), withNewline(new))
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, withNewline(old), edits))
}

// Roundtrip shows what converting a note's legacy text to a document tree
// and back would change. An empty result means the text survives unchanged.
func Roundtrip(content string) string {
	before := convert.ToMarkup(content)
	after := convert.ToMarkup(convert.ToDocJSON(before))
	return Unified("stored", "roundtrip", before, after)
}

// Render formats a unified diff for the terminal
func Render(unified string) string {
	// Wrap in diff code fence for syntax highlighting (+ in green, - in red)
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", withNewline(unified))

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}

	return rendered
}

// withNewline terminates text with a newline so the last line diffs cleanly
func withNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
