// Package doc defines the structured document tree edited by the rich editor
// and stored as JSON in a note's content field.
package doc

import (
	"encoding/json"
	"fmt"
)

// NodeType identifies the kind of a node in the document tree
type NodeType string

const (
	TypeDoc            NodeType = "doc"
	TypeParagraph      NodeType = "paragraph"
	TypeHeading        NodeType = "heading"
	TypeBulletList     NodeType = "bulletList"
	TypeOrderedList    NodeType = "orderedList"
	TypeTaskList       NodeType = "taskList"
	TypeListItem       NodeType = "listItem"
	TypeTaskItem       NodeType = "taskItem"
	TypeBlockquote     NodeType = "blockquote"
	TypeCodeBlock      NodeType = "codeBlock"
	TypeHorizontalRule NodeType = "horizontalRule"
	TypeImage          NodeType = "image"
	TypeTable          NodeType = "table"
	TypeTableRow       NodeType = "tableRow"
	TypeTableCell      NodeType = "tableCell"
	TypeTableHeader    NodeType = "tableHeader"
	TypeToggleList     NodeType = "toggleList"
	TypeToggleSummary  NodeType = "toggleSummary"
	TypeToggleContent  NodeType = "toggleContent"
	TypeCallout        NodeType = "callout"
	TypeText           NodeType = "text"
	TypeHardBreak      NodeType = "hardBreak"
)

// MarkType identifies an inline decoration on a text node
type MarkType string

const (
	MarkBold   MarkType = "bold"
	MarkItalic MarkType = "italic"
	MarkCode   MarkType = "code"
	MarkStrike MarkType = "strike"
	MarkLink   MarkType = "link"
)

// Mark is an inline decoration. Link marks carry "href" in Attrs.
type Mark struct {
	Type  MarkType               `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// Node is a single node of the document tree.
// Only text nodes use Text and Marks; every other kind is either a container
// (Content) or a void node (horizontalRule, image).
type Node struct {
	Type    NodeType               `json:"type"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Content []*Node                `json:"content,omitempty"`
	Text    string                 `json:"text,omitempty"`
	Marks   []Mark                 `json:"marks,omitempty"`
}

// MarshalJSON keeps the content array on doc nodes even when it is empty,
// so an empty document still reads back as a tree.
func (n *Node) MarshalJSON() ([]byte, error) {
	type plain Node
	if n.Type != TypeDoc {
		return json.Marshal((*plain)(n))
	}

	content := n.Content
	if content == nil {
		content = []*Node{}
	}
	return json.Marshal(struct {
		Type    NodeType               `json:"type"`
		Attrs   map[string]interface{} `json:"attrs,omitempty"`
		Content []*Node                `json:"content"`
	}{
		Type:    n.Type,
		Attrs:   n.Attrs,
		Content: content,
	})
}

// UnmarshalJSON reads the exact lower-case field names the editor writes.
// encoding/json would otherwise accept "Type" or "CONTENT" as well.
func (m *Mark) UnmarshalJSON(data []byte) error {
	*m = Mark{}
	return decodeFields(data, map[string]interface{}{
		"type":  &m.Type,
		"attrs": &m.Attrs,
	})
}

// UnmarshalJSON reads the exact lower-case field names the editor writes
func (n *Node) UnmarshalJSON(data []byte) error {
	*n = Node{}
	return decodeFields(data, map[string]interface{}{
		"type":    &n.Type,
		"attrs":   &n.Attrs,
		"content": &n.Content,
		"text":    &n.Text,
		"marks":   &n.Marks,
	})
}

// decodeFields decodes each present key of a JSON object into its target.
// Unknown keys are ignored.
func decodeFields(data []byte, targets map[string]interface{}) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

// Parse decodes a serialized document tree
func Parse(s string) (*Node, error) {
	var n Node
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Encode serializes a document tree
func Encode(n *Node) (string, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// IsDoc reports whether n is a document root
func (n *Node) IsDoc() bool {
	return n != nil && n.Type == TypeDoc
}

// IsText reports whether n is a text leaf
func (n *Node) IsText() bool {
	return n != nil && n.Type == TypeText
}

// Child returns the first direct child of the given type, or nil.
func (n *Node) Child(t NodeType) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Content {
		if c != nil && c.Type == t {
			return c
		}
	}
	return nil
}

// HasMark reports whether a text node carries a mark of the given type
func (n *Node) HasMark(t MarkType) bool {
	for _, m := range n.Marks {
		if m.Type == t {
			return true
		}
	}
	return false
}
