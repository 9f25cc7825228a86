package convert

import (
	"strconv"
	"strings"

	"github.com/gerunddev/notedoc/internal/doc"
)

// ToMarkup renders stored content as legacy text. Blank content renders as
// "". Content that is not a decodable tree is returned unchanged.
func ToMarkup(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	tree, ok := decodeTree(content)
	if !ok {
		return content
	}
	return RenderNode(tree)
}

// RenderNode renders a node and its subtree as legacy text.
// Sibling blocks are separated by a blank line; unknown containers render
// their children and unknown leaves render as "".
func RenderNode(n *doc.Node) string {
	if n == nil {
		return ""
	}

	switch n.Type {
	case doc.TypeDoc:
		return renderBlocks(n.Content)
	case doc.TypeParagraph:
		return renderInline(n.Content)
	case doc.TypeHeading:
		return strings.Repeat("#", n.Level()) + " " + renderInline(n.Content)
	case doc.TypeBulletList:
		return renderList(n, func(int, *doc.Node) string { return "- " })
	case doc.TypeOrderedList:
		return renderList(n, func(i int, _ *doc.Node) string { return strconv.Itoa(i+1) + ". " })
	case doc.TypeTaskList:
		return renderList(n, func(_ int, item *doc.Node) string {
			if item.Checked() {
				return "- [x] "
			}
			return "- [ ] "
		})
	case doc.TypeBlockquote, doc.TypeCallout:
		return quote(renderLines(n.Content))
	case doc.TypeCodeBlock:
		return "```" + doc.AttrString(n.Attrs, "language") + "\n" + codeText(n) + "\n```"
	case doc.TypeHorizontalRule:
		return "---"
	case doc.TypeImage:
		return renderImage(n)
	case doc.TypeToggleList:
		return renderToggle(n)
	case doc.TypeTable:
		return renderTable(n)
	case doc.TypeText, doc.TypeHardBreak:
		return renderInlineNode(n)
	default:
		if len(n.Content) > 0 {
			return renderBlocks(n.Content)
		}
		return ""
	}
}

// renderBlocks renders sibling blocks separated by blank lines
func renderBlocks(nodes []*doc.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, RenderNode(n))
	}
	return strings.Join(parts, "\n\n")
}

// renderLines renders sibling blocks one after another without blank lines
func renderLines(nodes []*doc.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, RenderNode(n))
	}
	return joinNonEmpty(parts, "\n")
}

func renderList(list *doc.Node, marker func(i int, item *doc.Node) string) string {
	lines := make([]string, 0, len(list.Content))
	i := 0
	for _, item := range list.Content {
		if item == nil {
			continue
		}
		lines = append(lines, marker(i, item)+renderLines(item.Content))
		i++
	}
	return strings.Join(lines, "\n")
}

// quote prefixes every line with "> "
func quote(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

// codeText concatenates the raw text of a code block, ignoring marks
func codeText(n *doc.Node) string {
	var b strings.Builder
	for _, c := range n.Content {
		if c.IsText() {
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

func renderImage(n *doc.Node) string {
	return "![" + doc.AttrString(n.Attrs, "alt") + "](" + doc.AttrString(n.Attrs, "src") + ")"
}

// renderToggle renders the summary line followed by the toggle's body blocks
func renderToggle(n *doc.Node) string {
	var parts []string
	if summary := n.Child(doc.TypeToggleSummary); summary != nil {
		parts = append(parts, renderInline(summary.Content))
	}
	if body := n.Child(doc.TypeToggleContent); body != nil {
		for _, c := range body.Content {
			parts = append(parts, RenderNode(c))
		}
	}
	return strings.Join(parts, "\n\n")
}

// renderTable renders pipe-delimited rows with a separator under the header row
func renderTable(n *doc.Node) string {
	var rows []string
	header := true
	for _, row := range n.Content {
		if row == nil {
			continue
		}

		var cells []string
		for _, cell := range row.Content {
			if cell == nil {
				continue
			}
			cells = append(cells, cellText(cell))
		}
		rows = append(rows, "| "+strings.Join(cells, " | ")+" |")

		if header {
			sep := make([]string, len(cells))
			for i := range sep {
				sep[i] = "---"
			}
			rows = append(rows, "| "+strings.Join(sep, " | ")+" |")
			header = false
		}
	}
	return strings.Join(rows, "\n")
}

// cellText renders the first paragraph of a table cell
func cellText(cell *doc.Node) string {
	p := cell.Child(doc.TypeParagraph)
	if p == nil {
		return ""
	}
	return renderInline(p.Content)
}

func renderInline(nodes []*doc.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(renderInlineNode(n))
	}
	return b.String()
}

func renderInlineNode(n *doc.Node) string {
	if n == nil {
		return ""
	}

	switch n.Type {
	case doc.TypeText:
		return applyMarks(n.Text, n.Marks)
	case doc.TypeImage:
		return renderImage(n)
	case doc.TypeHardBreak:
		return "\n"
	default:
		return renderInline(n.Content)
	}
}

// applyMarks wraps text in mark delimiters. The first mark listed ends up
// outermost.
func applyMarks(text string, marks []doc.Mark) string {
	for i := len(marks) - 1; i >= 0; i-- {
		switch marks[i].Type {
		case doc.MarkBold:
			text = "**" + text + "**"
		case doc.MarkItalic:
			text = "*" + text + "*"
		case doc.MarkCode:
			text = "`" + text + "`"
		case doc.MarkStrike:
			text = "~~" + text + "~~"
		case doc.MarkLink:
			text = "[" + text + "](" + doc.AttrString(marks[i].Attrs, "href") + ")"
		}
	}
	return text
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
