package convert

import (
	"strings"

	"github.com/gerunddev/notedoc/internal/doc"
)

// span is an emphasis run found in inline text
type span struct {
	start, end int // delimiters included
	inner      string
	mark       doc.MarkType
}

// ParseInline splits a line of legacy text into text nodes, turning
// **bold** and *italic* runs into marked nodes.
//
// The earliest opening delimiter wins and the run is not parsed further, so
// "**a *b* c**" yields one bold node "a *b* c".
// Empty text yields no nodes rather than an empty text node.
func ParseInline(text string) []*doc.Node {
	if text == "" {
		return nil
	}

	var nodes []*doc.Node
	rest := text
	for {
		s, ok := nextSpan(rest)
		if !ok {
			break
		}
		if s.start > 0 {
			nodes = append(nodes, doc.NewText(rest[:s.start]))
		}
		nodes = append(nodes, doc.NewText(s.inner, doc.Mark{Type: s.mark}))
		rest = rest[s.end:]
	}

	if rest != "" {
		nodes = append(nodes, doc.NewText(rest))
	}
	return nodes
}

// nextSpan returns whichever of the bold or italic runs starts first
func nextSpan(s string) (span, bool) {
	bold, hasBold := findBold(s)
	italic, hasItalic := findItalic(s)

	switch {
	case hasBold && hasItalic:
		if italic.start < bold.start {
			return italic, true
		}
		return bold, true
	case hasBold:
		return bold, true
	case hasItalic:
		return italic, true
	default:
		return span{}, false
	}
}

// findBold finds the first **inner** run with a non-empty inner text
func findBold(s string) (span, bool) {
	open := strings.Index(s, "**")
	if open < 0 || open+3 > len(s) {
		return span{}, false
	}

	// The inner text needs at least one byte before the closer
	closeRel := strings.Index(s[open+3:], "**")
	if closeRel < 0 {
		return span{}, false
	}
	closeAt := open + 3 + closeRel

	return span{
		start: open,
		end:   closeAt + 2,
		inner: s[open+2 : closeAt],
		mark:  doc.MarkBold,
	}, true
}

// findItalic finds the first *inner* run whose delimiters are single
// asterisks, i.e. not touching another '*'.
func findItalic(s string) (span, bool) {
	for open := 0; open < len(s); open++ {
		if !isLoneStar(s, open) {
			continue
		}
		for closeAt := open + 2; closeAt < len(s); closeAt++ {
			if isLoneStar(s, closeAt) {
				return span{
					start: open,
					end:   closeAt + 1,
					inner: s[open+1 : closeAt],
					mark:  doc.MarkItalic,
				}, true
			}
		}
	}
	return span{}, false
}

func isLoneStar(s string, i int) bool {
	if s[i] != '*' {
		return false
	}
	if i > 0 && s[i-1] == '*' {
		return false
	}
	if i+1 < len(s) && s[i+1] == '*' {
		return false
	}
	return true
}
