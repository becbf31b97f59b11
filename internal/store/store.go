// ABOUTME: JSON-file backed note store with CRUD and created_at date filtering.
// ABOUTME: Loads the whole file on open and rewrites it after every mutation.

package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/harper/notes/internal/models"
)

// Store owns the ordered note list for one notes file. It is not safe
// for concurrent use, and nothing guards the file against other processes.
type Store struct {
	path   string
	notes  []*models.Note
	opts   options
	logger *log.Logger
}

// Patch carries the optional fields of an edit. A nil field is left unchanged.
type Patch struct {
	Title *string
	Body  *string
}

// Open builds a Store for path and loads it. A missing file yields an empty store.
func Open(path string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		path:   path,
		opts:   o,
		logger: o.logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Len() int {
	return len(s.notes)
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.notes = nil
		s.logger.Debug("notes file absent, starting empty", "path", s.path)
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "read", Path: s.path, Err: err}
	}

	records, err := DecodeRecords(data)
	if err != nil {
		return &PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	notes := make([]*models.Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, models.FromRecord(r))
	}
	s.notes = notes
	s.logger.Debug("loaded notes", "path", s.path, "count", len(notes))
	return nil
}

func (s *Store) save() error {
	data, err := encodeNotes(s.notes)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &PersistenceError{Op: "write", Path: s.path, Err: err}
		}
	}
	if err := writeFileAtomic(s.path, data, s.opts.perm); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	s.logger.Debug("saved notes", "path", s.path, "count", len(s.notes))
	return nil
}

func (s *Store) nextID() int {
	if s.opts.idStrategy == IDStrategyMonotonic {
		highest := 0
		for _, n := range s.notes {
			if n.ID > highest {
				highest = n.ID
			}
		}
		return highest + 1
	}
	return len(s.notes) + 1
}

// Add creates a note with both timestamps set to now and persists it.
func (s *Store) Add(title, body string) (*models.Note, error) {
	note := models.NewNote(s.nextID(), title, body)
	s.notes = append(s.notes, note)

	if err := s.save(); err != nil {
		s.notes = s.notes[:len(s.notes)-1]
		return nil, err
	}
	return note, nil
}

// Edit applies the non-nil patch fields, refreshes UpdatedAt, and persists.
func (s *Store) Edit(id int, patch Patch) (*models.Note, error) {
	note, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	previous := *note
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Body != nil {
		note.Body = *patch.Body
	}
	note.Touch()

	if err := s.save(); err != nil {
		*note = previous
		return nil, err
	}
	return note, nil
}

// Delete removes the first note with id and persists the remaining list.
func (s *Store) Delete(id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}

	previous := s.notes
	remaining := make([]*models.Note, 0, len(s.notes)-1)
	remaining = append(remaining, s.notes[:idx]...)
	remaining = append(remaining, s.notes[idx+1:]...)
	s.notes = remaining

	if err := s.save(); err != nil {
		s.notes = previous
		return err
	}
	return nil
}

// Get returns the stored note itself, so later edits are visible through it.
func (s *Store) Get(id int) (*models.Note, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}
	return s.notes[idx], nil
}

func (s *Store) indexOf(id int) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// List returns all notes in insertion order.
func (s *Store) List() []*models.Note {
	out := make([]*models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// FilterByDate returns notes whose created_at date lies within the
// inclusive range. A nil bound leaves that side open.
func (s *Store) FilterByDate(start, end *Date) []*models.Note {
	var out []*models.Note
	for _, n := range s.notes {
		created := DateOf(n.CreatedAt)
		if start != nil && created.Before(*start) {
			continue
		}
		if end != nil && created.After(*end) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Import appends records as new notes, keeping their timestamps but
// assigning fresh ids. An UpdatedAt earlier than CreatedAt is raised to
// CreatedAt. The file is written once at the end.
func (s *Store) Import(records []models.Record) (int, error) {
	before := len(s.notes)
	for _, r := range records {
		r.ID = s.nextID()
		if r.UpdatedAt.Before(r.CreatedAt) {
			r.UpdatedAt = r.CreatedAt
		}
		s.notes = append(s.notes, models.FromRecord(r))
	}

	if err := s.save(); err != nil {
		s.notes = s.notes[:before]
		return 0, err
	}
	return len(s.notes) - before, nil
}
