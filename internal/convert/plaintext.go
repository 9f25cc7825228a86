package convert

import (
	"strings"

	"github.com/gerunddev/notedoc/internal/doc"
)

// ToPlainText strips structure and marks from stored content for previews,
// search and statistics. Legacy text is already plain and is returned as is,
// as is content that fails to decode.
//
// Sibling results are joined with a single space at every level, including
// adjacent runs inside one paragraph, so "a" + bold "b" reads as "a b".
// Empty siblings still take part in the join: a horizontal rule between two
// paragraphs yields "a  b".
func ToPlainText(content string) string {
	tree, ok := decodeTree(content)
	if !ok {
		return content
	}
	return PlainText(tree)
}

// PlainText extracts the text of a node and its subtree
func PlainText(n *doc.Node) string {
	if n == nil {
		return ""
	}
	if n.IsText() {
		return n.Text
	}

	parts := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		parts = append(parts, PlainText(c))
	}
	return strings.Join(parts, " ")
}
