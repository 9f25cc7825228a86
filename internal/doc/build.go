package doc

// NewDoc creates a document root. The content slice is never nil.
func NewDoc(blocks ...*Node) *Node {
	if blocks == nil {
		blocks = []*Node{}
	}
	return &Node{Type: TypeDoc, Content: blocks}
}

// NewText creates a text leaf with optional marks
func NewText(text string, marks ...Mark) *Node {
	n := &Node{Type: TypeText, Text: text}
	if len(marks) > 0 {
		n.Marks = marks
	}
	return n
}

func NewParagraph(inline ...*Node) *Node {
	return &Node{Type: TypeParagraph, Content: inline}
}

func NewHeading(level int, inline ...*Node) *Node {
	return &Node{
		Type:    TypeHeading,
		Attrs:   map[string]interface{}{"level": level},
		Content: inline,
	}
}

// NewList creates a list container of the given type. Each item is wrapped
// in the matching item node holding a single paragraph.
func NewList(t NodeType, items ...[]*Node) *Node {
	itemType := TypeListItem
	if t == TypeTaskList {
		itemType = TypeTaskItem
	}

	list := &Node{Type: t, Content: make([]*Node, 0, len(items))}
	for _, inline := range items {
		list.Content = append(list.Content, &Node{
			Type:    itemType,
			Content: []*Node{NewParagraph(inline...)},
		})
	}
	return list
}

// NewTaskItem creates a task item with a single paragraph
func NewTaskItem(checked bool, inline ...*Node) *Node {
	return &Node{
		Type:    TypeTaskItem,
		Attrs:   map[string]interface{}{"checked": checked},
		Content: []*Node{NewParagraph(inline...)},
	}
}

// NewLink creates a link mark
func NewLink(href string) Mark {
	return Mark{Type: MarkLink, Attrs: map[string]interface{}{"href": href}}
}
