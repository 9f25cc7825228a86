package notes

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gerunddev/notedoc/internal/convert"
	"github.com/gerunddev/notedoc/internal/logger"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no note matches an ID or prefix
	ErrNotFound = errors.New("note not found")
	// ErrAmbiguous is returned when a prefix matches more than one note
	ErrAmbiguous = errors.New("ambiguous note id")
)

// now is overridden in tests
var now = time.Now

// Store holds every note, keyed by ID
type Store struct {
	Notes map[string]*Note `json:"notes"`
}

// NewStore creates a new empty store
func NewStore() *Store {
	return &Store{
		Notes: make(map[string]*Note),
	}
}

// Load reads the store from disk. A missing file is an empty store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return nil, err
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse notes file: %w", err)
	}

	if store.Notes == nil {
		store.Notes = make(map[string]*Note)
	}

	return &store, nil
}

// Save writes the store to disk
func (s *Store) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}

	return nil
}

// ComputeHash computes the SHA256 hash of note content
func ComputeHash(content string) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256([]byte(content)))
}

// Add creates a note with a fresh ID
func (s *Store) Add(title, content string) *Note {
	ts := now()
	n := &Note{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Content:   content,
		Hash:      ComputeHash(content),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.Notes[n.ID.String()] = n
	return n
}

// Get finds a note by full ID or unique ID prefix
func (s *Store) Get(idOrPrefix string) (*Note, error) {
	key := strings.ToLower(strings.TrimSpace(idOrPrefix))
	if key == "" {
		return nil, ErrNotFound
	}

	if n, ok := s.Notes[key]; ok {
		return n, nil
	}

	var match *Note
	for id, n := range s.Notes {
		if !strings.HasPrefix(id, key) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguous, idOrPrefix)
		}
		match = n
	}

	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return match, nil
}

// Update replaces a note's content. Content with an unchanged hash is a
// no-op and reports false.
func (s *Store) Update(idOrPrefix, content string) (bool, error) {
	n, err := s.Get(idOrPrefix)
	if err != nil {
		return false, err
	}

	hash := ComputeHash(content)
	if hash == n.Hash {
		return false, nil
	}

	n.Content = content
	n.Hash = hash
	n.UpdatedAt = now()
	return true, nil
}

// Delete removes a note
func (s *Store) Delete(idOrPrefix string) (*Note, error) {
	n, err := s.Get(idOrPrefix)
	if err != nil {
		return nil, err
	}
	delete(s.Notes, n.ID.String())
	return n, nil
}

// List returns all notes, most recently updated first
func (s *Store) List() []*Note {
	list := make([]*Note, 0, len(s.Notes))
	for _, n := range s.Notes {
		list = append(list, n)
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].UpdatedAt.After(list[j].UpdatedAt)
		}
		if list[i].Title != list[j].Title {
			return list[i].Title < list[j].Title
		}
		return list[i].ID.String() < list[j].ID.String()
	})

	return list
}

// Migrate rewrites every legacy note as a serialized document tree and
// returns how many notes changed. Notes already stored as trees are left
// alone; undecodable ones are logged and skipped.
func (s *Store) Migrate(log *logger.Logger) int {
	migrated := 0
	for _, n := range s.List() {
		if n.Format() == FormatDoc {
			if _, err := n.Decode(); err != nil {
				log.DecodeFallback(n.ID.String(), err)
			}
			continue
		}

		content := convert.ToDocJSON(n.Content)
		log.NoteMigrated(n.ID.String(), len(n.Content), len(content))

		n.Content = content
		n.Hash = ComputeHash(content)
		migrated++
	}
	return migrated
}
