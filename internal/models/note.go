// ABOUTME: Note model representing a short text note with timestamps.
// ABOUTME: Provides constructor options, Touch, and the record form used for persistence.

package models

import "time"

type Note struct {
	ID        int
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record is the flat field mapping of a note. Timestamps stay structured;
// converting them to text is the job of whoever serializes the record.
type Record struct {
	ID        int       `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Body      string    `json:"body" yaml:"-"`
	CreatedAt time.Time `json:"created_at" yaml:"created"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated"`
}

type NoteOption func(*Note)

func WithCreatedAt(t time.Time) NoteOption {
	return func(n *Note) {
		n.CreatedAt = t
	}
}

func WithUpdatedAt(t time.Time) NoteOption {
	return func(n *Note) {
		n.UpdatedAt = t
	}
}

// NewNote builds a note. A timestamp not supplied through an option is
// set to the current time, each one read from the clock separately.
func NewNote(id int, title, body string, opts ...NoteOption) *Note {
	n := &Note{
		ID:    id,
		Title: title,
		Body:  body,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = time.Now()
	}
	return n
}

// FromRecord rebuilds a note exactly as recorded, zero timestamps included.
func FromRecord(r Record) *Note {
	return &Note{
		ID:        r.ID,
		Title:     r.Title,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (n *Note) Touch() {
	n.UpdatedAt = time.Now()
}

func (n *Note) ToRecord() Record {
	return Record{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
