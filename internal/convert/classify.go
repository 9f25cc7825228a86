// Package convert moves note content between legacy text, the document tree
// and plain text. Every function here is pure and total: malformed input
// degrades to a documented fallback instead of an error.
package convert

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gerunddev/notedoc/internal/doc"
)

// IsLegacy reports whether stored content is legacy text rather than a
// serialized document tree. Blank content counts as an (empty) tree.
func IsLegacy(content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}

	// Only an object with exactly "type":"doc" and a "content" array is
	// trusted as a tree. Key matching is case-sensitive.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return true
	}

	var typ string
	if err := json.Unmarshal(fields["type"], &typ); err != nil || typ != string(doc.TypeDoc) {
		return true
	}

	raw := bytes.TrimSpace(fields["content"])
	return len(raw) == 0 || raw[0] != '['
}

// decodeTree decodes content that classifies as a tree. ok is false for
// legacy text and for trees that fail to decode.
func decodeTree(content string) (tree *doc.Node, ok bool) {
	if IsLegacy(content) {
		return nil, false
	}
	n, err := doc.Parse(content)
	if err != nil {
		return nil, false
	}
	return n, true
}
