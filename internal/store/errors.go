// ABOUTME: Error types returned by the note store.
// ABOUTME: NotFound carries the requested id; persistence and serialization wrap their cause.

package store

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("note not found")

type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note with id=%d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PersistenceError reports a failure reading or writing the backing file.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SerializationError reports a note set that could not be encoded.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize notes: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
