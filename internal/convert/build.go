package convert

import (
	"strings"

	"github.com/gerunddev/notedoc/internal/doc"
)

// ToDoc builds a document tree from legacy text
func ToDoc(legacy string) *doc.Node {
	if strings.TrimSpace(legacy) == "" {
		return doc.NewDoc()
	}

	blocks := parseBlocks(legacy)
	content := make([]*doc.Node, 0, len(blocks))
	for _, b := range blocks {
		content = append(content, blockToNode(b))
	}
	return doc.NewDoc(content...)
}

func blockToNode(b block) *doc.Node {
	switch b.kind {
	case blockHeading:
		return doc.NewHeading(b.level, ParseInline(b.text)...)
	case blockBulletList:
		return itemsToList(doc.TypeBulletList, b.items)
	case blockOrderedList:
		return itemsToList(doc.TypeOrderedList, b.items)
	default:
		return doc.NewParagraph(ParseInline(b.text)...)
	}
}

func itemsToList(t doc.NodeType, items []string) *doc.Node {
	inline := make([][]*doc.Node, 0, len(items))
	for _, item := range items {
		inline = append(inline, ParseInline(item))
	}
	return doc.NewList(t, inline...)
}

// ToDocJSON builds a document tree from legacy text and serializes it
func ToDocJSON(legacy string) string {
	s, err := doc.Encode(ToDoc(legacy))
	if err != nil {
		// Trees built from text always encode
		return `{"type":"doc","content":[]}`
	}
	return s
}

// Normalize returns content as a serialized tree whatever its stored
// format. Content that looks like a tree but does not decode is an error.
func Normalize(content string) (string, error) {
	if IsLegacy(content) || strings.TrimSpace(content) == "" {
		return ToDocJSON(content), nil
	}

	n, err := doc.Parse(content)
	if err != nil {
		return "", err
	}
	return doc.Encode(n)
}
