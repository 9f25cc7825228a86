package convert

import (
	"reflect"
	"regexp"
	"testing"
)

func TestParseBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []block
	}{
		{
			name:  "headings",
			input: "# One\n## Two\n### Three",
			expected: []block{
				{kind: blockHeading, level: 1, text: "One"},
				{kind: blockHeading, level: 2, text: "Two"},
				{kind: blockHeading, level: 3, text: "Three"},
			},
		},
		{
			name:  "too many hashes is a paragraph",
			input: "#### Four\n#NoSpace\n# ",
			expected: []block{
				{kind: blockParagraph, text: "#### Four"},
				{kind: blockParagraph, text: "#NoSpace"},
				{kind: blockParagraph, text: "# "},
			},
		},
		{
			name:  "full-width space after hash",
			input: "#　見出し",
			expected: []block{
				{kind: blockHeading, level: 1, text: "見出し"},
			},
		},
		{
			name:  "bullet markers",
			input: "- a\n・b\n-c\n-",
			expected: []block{
				{kind: blockBulletList, items: []string{"a", "b", "c", ""}},
			},
		},
		{
			name:  "ordered list",
			input: "1. one\n2. two\n10. ten",
			expected: []block{
				{kind: blockOrderedList, items: []string{"one", "two", "ten"}},
			},
		},
		{
			name:  "bullet run ends at ordered item",
			input: "- a\n1. b",
			expected: []block{
				{kind: blockBulletList, items: []string{"a"}},
				{kind: blockOrderedList, items: []string{"b"}},
			},
		},
		{
			name:  "blank line splits a list",
			input: "- a\n\n- b",
			expected: []block{
				{kind: blockBulletList, items: []string{"a"}},
				{kind: blockBulletList, items: []string{"b"}},
			},
		},
		{
			name:  "paragraphs keep the raw line",
			input: "  indented\r\n1.no space\r\n\r\nlast ",
			expected: []block{
				{kind: blockParagraph, text: "  indented"},
				{kind: blockParagraph, text: "1.no space"},
				{kind: blockParagraph, text: "last "},
			},
		},
		{
			name:  "mixed document",
			input: "# Plan\n\n- milk\n- eggs\nthen\n1. cook",
			expected: []block{
				{kind: blockHeading, level: 1, text: "Plan"},
				{kind: blockBulletList, items: []string{"milk", "eggs"}},
				{kind: blockParagraph, text: "then"},
				{kind: blockOrderedList, items: []string{"cook"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := parseBlocks(tt.input)
			if !reflect.DeepEqual(actual, tt.expected) {
				t.Errorf("parseBlocks(%q)\nExpected: %+v\nGot:      %+v", tt.input, tt.expected, actual)
			}
		})
	}
}

func TestParseBlocksBlankInput(t *testing.T) {
	if blocks := parseBlocks("\n\n  \n"); len(blocks) != 0 {
		t.Errorf("Expected no blocks, got %+v", blocks)
	}
}

func TestIsSpace(t *testing.T) {
	tests := []struct {
		r        rune
		expected bool
	}{
		{' ', true},
		{'\t', true},
		{'\v', true},
		{'\u00A0', true},
		{'\u3000', true},
		{'\uFEFF', true},
		{'\u2028', true},
		{'\u0085', false},
		{'a', false},
		{'・', false},
	}

	class := regexp.MustCompile(`^` + space + `$`)
	for _, tt := range tests {
		if got := IsSpace(tt.r); got != tt.expected {
			t.Errorf("IsSpace(%U) = %v, want %v", tt.r, got, tt.expected)
		}
		if got := class.MatchString(string(tt.r)); got != tt.expected {
			t.Errorf("space class match for %U = %v, want %v", tt.r, got, tt.expected)
		}
	}
}
