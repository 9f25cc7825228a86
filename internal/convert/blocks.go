package convert

import (
	"regexp"
	"strings"
	"unicode"
)

// space matches what ECMAScript's \s matches, so full-width and
// no-break spaces separate markers the same way the editor does.
const space = `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]`

// IsSpace reports whether r is in the same whitespace class as space.
// Unlike unicode.IsSpace it includes U+FEFF and excludes U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

var (
	headingLine = regexp.MustCompile(`^(#{1,3})` + space + `+(.+)$`)
	bulletLine  = regexp.MustCompile(`^[-・]` + space + `*`)
	orderedLine = regexp.MustCompile(`^\d+\.` + space + `+`)
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockBulletList
	blockOrderedList
)

// block is one top-level unit of legacy text
type block struct {
	kind  blockKind
	level int
	items []string
	text  string
}

// parseBlocks splits legacy text into blocks, dropping blank lines.
// Rules are tried in order: heading, bullet list, ordered list, paragraph.
func parseBlocks(text string) []block {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var blocks []block
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := headingLine.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{
				kind:  blockHeading,
				level: len(m[1]),
				text:  m[2],
			})
			continue
		}

		if bulletLine.MatchString(line) {
			items, next := consumeItems(lines, i, bulletLine)
			blocks = append(blocks, block{kind: blockBulletList, items: items})
			i = next - 1
			continue
		}

		if orderedLine.MatchString(line) {
			items, next := consumeItems(lines, i, orderedLine)
			blocks = append(blocks, block{kind: blockOrderedList, items: items})
			i = next - 1
			continue
		}

		blocks = append(blocks, block{kind: blockParagraph, text: line})
	}

	return blocks
}

// consumeItems collects consecutive lines matching marker starting at
// start, with the marker stripped. It returns the index of the first line
// that is not part of the list.
func consumeItems(lines []string, start int, marker *regexp.Regexp) ([]string, int) {
	var items []string
	j := start
	for j < len(lines) && marker.MatchString(lines[j]) {
		items = append(items, marker.ReplaceAllLiteralString(lines[j], ""))
		j++
	}
	return items, j
}
