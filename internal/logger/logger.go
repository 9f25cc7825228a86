package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file.
// An unparseable level name falls back to info.
func NewFileLogger(path, level string) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, lvl), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// NoteLoaded logs a note opened for reading or editing
func (l *Logger) NoteLoaded(id, format string) {
	l.Debug("note loaded",
		"id", id,
		"format", format)
}

// NoteSaved logs a note write
func (l *Logger) NoteSaved(id string, changed bool) {
	l.Info("note saved",
		"id", id,
		"changed", changed)
}

// NoteMigrated logs a legacy note rewritten as a document tree
func (l *Logger) NoteMigrated(id string, before, after int) {
	l.Info("note migrated",
		"id", id,
		"legacy_bytes", before,
		"doc_bytes", after)
}

// DecodeFallback logs stored content that could not be decoded
func (l *Logger) DecodeFallback(id string, err error) {
	l.Warn("decode fallback",
		"id", id,
		"error", err)
}

// ExportWritten logs an exported file
func (l *Logger) ExportWritten(id, path string) {
	l.Info("export written",
		"id", id,
		"path", path)
}

// StoreError logs a store-related error
func (l *Logger) StoreError(operation string, err error) {
	l.Error("store error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(notesFile, exportDir string) {
	l.Debug("config loaded",
		"notes_file", notesFile,
		"export_dir", exportDir)
}
