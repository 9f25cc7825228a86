package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/notedoc/internal/commands"
	"github.com/gerunddev/notedoc/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		commands.List()
	case "show":
		commands.Show(args)
	case "add":
		commands.Add(args)
	case "import":
		commands.Import(args)
	case "edit":
		commands.Edit(args)
	case "delete", "rm":
		commands.Delete(args)
	case "export":
		commands.Export(args)
	case "copy":
		commands.Copy(args)
	case "stats":
		commands.Stats(args)
	case "diff":
		commands.Diff(args)
	case "migrate":
		commands.Migrate(args)
	case "browse":
		commands.Browse()
	case "version", "-v", "--version":
		fmt.Printf("notedoc v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`notedoc - Notes stored as document trees, editable as plain markup

Usage:
  notedoc <command> [options]

Commands:
  list        List all notes, newest first
  show        Print a note as markup (--raw for stored content)
  add         Add a note from a file or stdin
  import      Import an exported markdown file
  edit        Replace a note's content from a file or stdin
  delete      Delete a note
  export      Write a note to the export directory (--all, --front-matter, --dir)
  copy        Copy a note to the clipboard as markup
  stats       Show character count and reading time
  diff        Show what a round trip through the editor would change
  migrate     Convert legacy notes to document trees (use --dry-run to preview)
  browse      Browse notes interactively
  version     Show version information
  help        Show this help message

Examples:
  notedoc add "Groceries" list.md
  echo "- milk" | notedoc add "Groceries" -
  notedoc show 3f2a
  notedoc edit 3f2a list.md
  notedoc export 3f2a --front-matter
  notedoc migrate --dry-run
  notedoc browse

Notes are addressed by ID or any unique ID prefix.

Configuration:
  Config file: %s
  Notes file:  %s
`, config.ConfigPath(), config.NotesFilePath())
	fmt.Print(usage)
}
