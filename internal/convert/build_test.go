package convert

import (
	"testing"

	"github.com/gerunddev/notedoc/internal/doc"
)

func mustEncode(t *testing.T, n *doc.Node) string {
	t.Helper()
	s, err := doc.Encode(n)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return s
}

func TestToDoc(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: `{"type":"doc","content":[]}`,
		},
		{
			name:     "whitespace",
			input:    " \n\n ",
			expected: `{"type":"doc","content":[]}`,
		},
		{
			name:     "heading level",
			input:    "### H",
			expected: `{"type":"doc","content":[{"type":"heading","attrs":{"level":3},"content":[{"type":"text","text":"H"}]}]}`,
		},
		{
			name:  "bullet list",
			input: "- a\n- b",
			expected: `{"type":"doc","content":[{"type":"bulletList","content":[` +
				`{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"a"}]}]},` +
				`{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"b"}]}]}]}]}`,
		},
		{
			name:  "ordered list",
			input: "1. a",
			expected: `{"type":"doc","content":[{"type":"orderedList","content":[` +
				`{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"a"}]}]}]}]}`,
		},
		{
			name:  "paragraph with bold",
			input: "a **b**",
			expected: `{"type":"doc","content":[{"type":"paragraph","content":[` +
				`{"type":"text","text":"a "},{"type":"text","text":"b","marks":[{"type":"bold"}]}]}]}`,
		},
		{
			name:     "empty bullet item",
			input:    "-",
			expected: `{"type":"doc","content":[{"type":"bulletList","content":[{"type":"listItem","content":[{"type":"paragraph"}]}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := mustEncode(t, ToDoc(tt.input))
			if actual != tt.expected {
				t.Errorf("Conversion mismatch.\nExpected:\n%s\n\nGot:\n%s", tt.expected, actual)
			}
		})
	}
}

func TestToDocKeepsBlockOrder(t *testing.T) {
	tree := ToDoc("first\n# second\n- third\n1. fourth\nfifth")

	expected := []doc.NodeType{
		doc.TypeParagraph,
		doc.TypeHeading,
		doc.TypeBulletList,
		doc.TypeOrderedList,
		doc.TypeParagraph,
	}
	if len(tree.Content) != len(expected) {
		t.Fatalf("Expected %d blocks, got %d", len(expected), len(tree.Content))
	}
	for i, typ := range expected {
		if tree.Content[i].Type != typ {
			t.Errorf("Block %d type = %s, want %s", i, tree.Content[i].Type, typ)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "legacy text",
			input:    "# T",
			expected: `{"type":"doc","content":[{"type":"heading","attrs":{"level":1},"content":[{"type":"text","text":"T"}]}]}`,
		},
		{
			name:     "empty",
			input:    "",
			expected: `{"type":"doc","content":[]}`,
		},
		{
			name:     "tree is re-encoded",
			input:    `{ "type": "doc", "content": [ {"type":"horizontalRule"} ] }`,
			expected: `{"type":"doc","content":[{"type":"horizontalRule"}]}`,
		},
		{
			name:    "undecodable tree",
			input:   `{"type":"doc","content":[1]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Normalize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if actual != tt.expected {
				t.Errorf("Normalize(%q) = %s, want %s", tt.input, actual, tt.expected)
			}
		})
	}
}
