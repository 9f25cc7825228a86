package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gerunddev/notedoc/internal/convert"
	"github.com/gerunddev/notedoc/internal/export"
	"github.com/gerunddev/notedoc/internal/notes"
	"github.com/gerunddev/notedoc/internal/stats"
	"github.com/gerunddev/notedoc/internal/styles"
	"github.com/mattn/go-runewidth"
)

const listTitleWidth = 32

// List prints every note, newest first
func List() {
	e := loadEnv()
	defer e.cleanup()

	list := e.store.List()
	if len(list) == 0 {
		fmt.Println(styles.DimStyle.Render("No notes yet. Add one with 'notedoc add <title> [file]'"))
		return
	}

	fmt.Println(styles.HeaderStyle.Render(fmt.Sprintf("%-8s  %s  %-6s  %s",
		"ID", runewidth.FillRight("Title", listTitleWidth), "Format", "Preview")))
	for _, n := range list {
		title := n.Title
		if title == "" {
			title = "(untitled)"
		}
		title = runewidth.FillRight(runewidth.Truncate(title, listTitleWidth, "…"), listTitleWidth)

		fmt.Printf("%s  %s  %s  %s\n",
			styles.IDStyle.Render(n.ShortID()),
			styles.ValueStyle.Render(title),
			styles.FormatBadge(fmt.Sprintf("%-6s", n.Format())),
			styles.DimStyle.Render(n.Preview(e.cfg.PreviewLength)))
	}
}

// Show prints a note as legacy text. --raw prints the stored content.
func Show(args []string) {
	flags, pos := splitFlags(args)
	if len(pos) < 1 {
		fail("Usage: notedoc show <id> [--raw]")
	}

	e := loadEnv()
	defer e.cleanup()
	n := e.note(pos[0])

	if flags["raw"] != "" {
		fmt.Println(n.Content)
		return
	}

	s := stats.ComputeWithRate(n.Content, e.cfg.CharsPerMinute)
	fmt.Println(styles.TitleStyle.Render(n.Title))
	fmt.Printf("%s %s  %s %s  %s %s chars, ~%d min  %s %s\n\n",
		styles.LabelStyle.Render("id"), styles.IDStyle.Render(n.ID.String()),
		styles.LabelStyle.Render("format"), styles.FormatBadge(n.Format()),
		styles.LabelStyle.Render("size"), humanize.Comma(int64(s.CharCount)), s.ReadingMinutes,
		styles.LabelStyle.Render("updated"), humanize.Time(n.UpdatedAt))
	fmt.Println(n.Markup())
}

// Add creates a note from a file or standard input, stored as a document tree
func Add(args []string) {
	if len(args) < 1 {
		fail("Usage: notedoc add <title> [file|-]")
	}

	input := ""
	if len(args) > 1 {
		var err error
		if input, err = readInput(args[1]); err != nil {
			fail(err.Error())
		}
	}

	content, err := convert.Normalize(input)
	if err != nil {
		fail("Invalid document: " + err.Error())
	}

	e := loadEnv()
	defer e.cleanup()

	n := e.store.Add(args[0], content)
	e.save()
	e.log.NoteSaved(n.ID.String(), true)

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Added note %s", n.ShortID())))
}

// Import creates a note from an exported markdown file. The title comes from
// front matter, then a leading heading, then the file name.
func Import(args []string) {
	if len(args) < 1 {
		fail("Usage: notedoc import <file>")
	}

	text, err := readInput(args[0])
	if err != nil {
		fail(err.Error())
	}

	fm, body, err := export.ParseFrontMatter(text)
	if err != nil {
		fail(err.Error())
	}

	title := fm.Title
	if headingTitle, rest := export.TitleFromBody(body); headingTitle != "" && (title == "" || title == headingTitle) {
		title, body = headingTitle, rest
	}
	if title == "" {
		title = titleFromPath(args[0])
	}

	content, err := convert.Normalize(strings.TrimRight(body, "\n"))
	if err != nil {
		fail("Invalid document: " + err.Error())
	}

	e := loadEnv()
	defer e.cleanup()

	n := e.store.Add(title, content)
	e.save()
	e.log.NoteSaved(n.ID.String(), true)

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Imported %q as %s", title, n.ShortID())))
}

// Edit replaces a note's content from a file or standard input
func Edit(args []string) {
	if len(args) < 2 {
		fail("Usage: notedoc edit <id> <file|->")
	}

	input, err := readInput(args[1])
	if err != nil {
		fail(err.Error())
	}

	content, err := convert.Normalize(input)
	if err != nil {
		fail("Invalid document: " + err.Error())
	}

	e := loadEnv()
	defer e.cleanup()
	n := e.note(args[0])

	changed, err := e.store.Update(n.ID.String(), content)
	if err != nil {
		e.log.StoreError("update", err)
		fail(err.Error())
	}
	e.log.NoteSaved(n.ID.String(), changed)

	if !changed {
		fmt.Println(styles.DimStyle.Render("No changes"))
		return
	}

	e.save()
	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Updated note %s", n.ShortID())))
}

// Delete removes a note
func Delete(args []string) {
	if len(args) < 1 {
		fail("Usage: notedoc delete <id>")
	}

	e := loadEnv()
	defer e.cleanup()

	n, err := e.store.Delete(args[0])
	if err != nil {
		fail(err.Error())
	}
	e.save()
	e.log.Info("note deleted", "id", n.ID.String())

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Deleted note %s", n.ShortID())))
}

// Stats prints size and reading time for one note, or totals for all notes
func Stats(args []string) {
	e := loadEnv()
	defer e.cleanup()

	if len(args) > 0 {
		n := e.note(args[0])
		s := stats.ComputeWithRate(n.Content, e.cfg.CharsPerMinute)
		fmt.Printf("%s %s\n", styles.LabelStyle.Render("Characters:  "), styles.ValueStyle.Render(humanize.Comma(int64(s.CharCount))))
		fmt.Printf("%s %s\n", styles.LabelStyle.Render("Reading time:"), styles.ValueStyle.Render(fmt.Sprintf("%d min", s.ReadingMinutes)))
		return
	}

	var chars, minutes, legacy int
	list := e.store.List()
	for _, n := range list {
		s := stats.ComputeWithRate(n.Content, e.cfg.CharsPerMinute)
		chars += s.CharCount
		minutes += s.ReadingMinutes
		if n.Format() == notes.FormatLegacy {
			legacy++
		}
	}

	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Notes:       "), styles.ValueStyle.Render(fmt.Sprintf("%d", len(list))))
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Legacy:      "), styles.ValueStyle.Render(fmt.Sprintf("%d", legacy)))
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Characters:  "), styles.ValueStyle.Render(humanize.Comma(int64(chars))))
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Reading time:"), styles.ValueStyle.Render(fmt.Sprintf("%d min", minutes)))
}

// Migrate rewrites legacy notes as document trees. --dry-run only counts them.
func Migrate(args []string) {
	flags, _ := splitFlags(args)

	e := loadEnv()
	defer e.cleanup()

	if flags["dry-run"] != "" {
		pending := 0
		for _, n := range e.store.List() {
			if n.Format() == notes.FormatLegacy {
				fmt.Printf("  %s %s\n", styles.IDStyle.Render(n.ShortID()), n.Title)
				pending++
			}
		}
		fmt.Println(styles.DimStyle.Render(fmt.Sprintf("%d note(s) would be migrated", pending)))
		return
	}

	count := e.store.Migrate(e.log)
	if count == 0 {
		fmt.Println(styles.DimStyle.Render("All notes are already document trees"))
		return
	}

	e.save()
	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Migrated %d note(s)", count)))
}
