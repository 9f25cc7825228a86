package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gerunddev/notedoc/internal/config"
	"github.com/gerunddev/notedoc/internal/logger"
	"github.com/gerunddev/notedoc/internal/notes"
	"github.com/gerunddev/notedoc/internal/styles"
)

// stdin is overridden in tests
var stdin io.Reader = os.Stdin

// env is what every note command needs: config, store and logger
type env struct {
	cfg     *config.Config
	store   *notes.Store
	log     *logger.Logger
	cleanup func()
}

// loadEnv loads configuration and the note store, exiting on failure
func loadEnv() *env {
	cfg, err := config.Load()
	if err != nil {
		fail("Error loading config: " + err.Error())
	}

	log := logger.Discard()
	cleanup := func() {}
	if cfg.LogFile != "" {
		if l, c, err := logger.NewFileLogger(cfg.LogFile, cfg.LogLevel); err == nil {
			log, cleanup = l, c
		}
	}
	log.ConfigLoaded(cfg.NotesFile, cfg.ExportDir)

	store, err := notes.Load(cfg.NotesFile)
	if err != nil {
		log.StoreError("load", err)
		cleanup()
		fail("Error loading notes: " + err.Error())
	}

	return &env{cfg: cfg, store: store, log: log, cleanup: cleanup}
}

// save persists the store, exiting on failure
func (e *env) save() {
	if err := e.store.Save(e.cfg.NotesFile); err != nil {
		e.log.StoreError("save", err)
		e.cleanup()
		fail("Error saving notes: " + err.Error())
	}
}

// note resolves an ID or prefix, exiting on failure
func (e *env) note(id string) *notes.Note {
	n, err := e.store.Get(id)
	if err != nil {
		e.cleanup()
		fail(err.Error())
	}
	e.log.NoteLoaded(n.ID.String(), n.Format())
	return n
}

// fail prints a styled error and exits
func fail(msg string) {
	fmt.Println(styles.ErrorStyle.Render("✗ " + msg))
	os.Exit(1)
}

// readInput reads a file, or standard input when path is "-" or empty
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// splitFlags separates --flags from positional arguments. Flags listed in
// valued take the following argument as their value.
func splitFlags(args []string, valued ...string) (map[string]string, []string) {
	flags := make(map[string]string)
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}

		name := strings.TrimPrefix(arg, "--")
		if k, v, ok := strings.Cut(name, "="); ok {
			flags[k] = v
			continue
		}

		flags[name] = "true"
		for _, v := range valued {
			if v == name && i+1 < len(args) {
				flags[name] = args[i+1]
				i++
				break
			}
		}
	}

	return flags, positional
}

// titleFromPath derives a note title from a file name
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
