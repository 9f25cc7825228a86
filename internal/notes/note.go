package notes

import (
	"strings"
	"time"

	"github.com/gerunddev/notedoc/internal/convert"
	"github.com/gerunddev/notedoc/internal/doc"
	"github.com/google/uuid"
)

// Storage formats reported by Note.Format
const (
	FormatLegacy = "legacy"
	FormatDoc    = "doc"
)

// Note is a single stored note. Content holds either legacy text or a
// serialized document tree.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShortID returns the first eight characters of the ID
func (n *Note) ShortID() string {
	return n.ID.String()[:8]
}

// Format reports how the content is stored
func (n *Note) Format() string {
	if convert.IsLegacy(n.Content) {
		return FormatLegacy
	}
	return FormatDoc
}

// Decode returns the editable tree for the note. Legacy text is converted;
// a stored tree that fails to decode is an error.
func (n *Note) Decode() (*doc.Node, error) {
	if strings.TrimSpace(n.Content) == "" {
		return doc.NewDoc(), nil
	}
	if convert.IsLegacy(n.Content) {
		return convert.ToDoc(n.Content), nil
	}
	return doc.Parse(n.Content)
}

// Document is Decode with undecodable content replaced by an empty document
func (n *Note) Document() *doc.Node {
	tree, err := n.Decode()
	if err != nil {
		return doc.NewDoc()
	}
	return tree
}

// Markup returns the note as legacy text
func (n *Note) Markup() string {
	return convert.ToMarkup(n.Content)
}

// Preview returns the first max runes of the note's plain text on one line.
// A non-positive max returns the whole text.
func (n *Note) Preview(max int) string {
	text := strings.Join(strings.Fields(convert.ToPlainText(n.Content)), " ")
	if max <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
