package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gerunddev/notedoc/internal/convert"
	"github.com/gerunddev/notedoc/internal/stats"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("notedoc-convert v%s\n", version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	in := io.Reader(os.Stdin)
	if len(os.Args) > 2 && os.Args[2] != "-" {
		f, err := os.Open(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(command, in, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(1)
	}
}

// run applies one conversion to everything read from in
func run(command string, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	content := string(data)

	var result string
	switch command {
	case "to-doc", "d":
		result, err = convert.Normalize(strings.TrimRight(content, "\n"))
		if err != nil {
			return err
		}
	case "to-markup", "m":
		result = convert.ToMarkup(content)
	case "to-text", "t":
		result = convert.ToPlainText(content)
	case "classify", "c":
		result = "doc"
		if convert.IsLegacy(content) {
			result = "legacy"
		}
	case "stats", "s":
		s := stats.Compute(content)
		result = fmt.Sprintf("chars=%d minutes=%d", s.CharCount, s.ReadingMinutes)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}

	_, err = fmt.Fprintln(out, result)
	return err
}

func printUsage() {
	usage := `notedoc-convert - Convert note content between markup and document trees

Usage:
  notedoc-convert <command> [file|-]

Reads from the file, or stdin when no file is given, and writes to stdout.

Commands:
  to-doc, d       Convert markup to a serialized document tree
  to-markup, m    Render a document tree as markup
  to-text, t      Extract plain text
  classify, c     Print "legacy" or "doc"
  stats, s        Print character count and reading minutes
  version         Show version information
  help            Show this help message

Examples:
  echo "# Title" | notedoc-convert to-doc
  notedoc-convert to-markup note.json
  notedoc-convert to-doc note.md | notedoc-convert to-text
`
	fmt.Print(usage)
}
