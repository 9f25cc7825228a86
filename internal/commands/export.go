package commands

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/notedoc/internal/diff"
	"github.com/gerunddev/notedoc/internal/export"
	"github.com/gerunddev/notedoc/internal/notes"
	"github.com/gerunddev/notedoc/internal/styles"
	"github.com/gerunddev/notedoc/internal/tui"
)

// Export writes one note, or every note with --all, to the export directory
func Export(args []string) {
	flags, pos := splitFlags(args, "dir")
	if len(pos) < 1 && flags["all"] == "" {
		fail("Usage: notedoc export <id>|--all [--front-matter] [--dir <dir>]")
	}

	e := loadEnv()
	defer e.cleanup()

	dir := e.cfg.ExportDir
	if flags["dir"] != "" && flags["dir"] != "true" {
		dir = flags["dir"]
	}
	opts := export.Options{
		FrontMatter: e.cfg.ExportFrontMatter || flags["front-matter"] != "",
	}

	var list []*notes.Note
	if flags["all"] != "" {
		list = e.store.List()
	} else {
		list = []*notes.Note{e.note(pos[0])}
	}

	for _, n := range list {
		path, err := export.WriteFile(dir, n, opts)
		if err != nil {
			e.log.StoreError("export", err)
			fail(err.Error())
		}
		e.log.ExportWritten(n.ID.String(), path)
		fmt.Println(styles.SuccessStyle.Render("✓ Exported " + path))
	}
}

// Copy puts a note on the clipboard as legacy text
func Copy(args []string) {
	if len(args) < 1 {
		fail("Usage: notedoc copy <id>")
	}

	e := loadEnv()
	defer e.cleanup()
	n := e.note(args[0])

	text := export.Copy(n.Content)
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("⚠ Clipboard unavailable, printing instead: "+err.Error()))
		fmt.Println(text)
		return
	}

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Copied %s to clipboard", n.ShortID())))
}

// Diff shows what converting a note to a document tree and back would change
func Diff(args []string) {
	if len(args) < 1 {
		fail("Usage: notedoc diff <id>")
	}

	e := loadEnv()
	defer e.cleanup()
	n := e.note(args[0])

	if _, err := n.Decode(); err != nil {
		e.log.DecodeFallback(n.ID.String(), err)
	}

	unified := diff.Roundtrip(n.Content)
	if unified == "" {
		fmt.Println(styles.SuccessStyle.Render("✓ Round trip preserves this note"))
		return
	}
	fmt.Print(diff.Render(unified))
}

// Browse opens the interactive note browser
func Browse() {
	e := loadEnv()
	defer e.cleanup()

	load := func() (*tui.BrowseData, error) {
		store, err := notes.Load(e.cfg.NotesFile)
		if err != nil {
			e.log.StoreError("load", err)
			return nil, fmt.Errorf("error loading notes: %w", err)
		}
		return tui.NewBrowseData(store.List(), e.cfg.CharsPerMinute), nil
	}

	p := tea.NewProgram(tui.InitBrowseModel(load), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail("Error: " + err.Error())
	}
}
