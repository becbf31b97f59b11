// ABOUTME: Functional options for opening a Store.
// ABOUTME: Configures logger, id assignment strategy, and file permissions.

package store

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// IDStrategy selects how Add picks the id of a new note.
type IDStrategy string

const (
	// IDStrategyLength assigns len(notes)+1. After a deletion this can
	// hand out an id that an existing note already holds.
	IDStrategyLength IDStrategy = "length"
	// IDStrategyMonotonic assigns one more than the largest id present.
	IDStrategyMonotonic IDStrategy = "monotonic"
)

func ParseIDStrategy(s string) (IDStrategy, error) {
	switch IDStrategy(s) {
	case "", IDStrategyLength:
		return IDStrategyLength, nil
	case IDStrategyMonotonic:
		return IDStrategyMonotonic, nil
	default:
		return "", fmt.Errorf("unknown id strategy %q (want %q or %q)", s, IDStrategyLength, IDStrategyMonotonic)
	}
}

type options struct {
	logger     *log.Logger
	idStrategy IDStrategy
	perm       os.FileMode
}

func defaultOptions() options {
	return options{
		logger:     log.New(io.Discard),
		idStrategy: IDStrategyLength,
		perm:       0600,
	}
}

type Option func(*options)

func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithIDStrategy(s IDStrategy) Option {
	return func(o *options) {
		o.idStrategy = s
	}
}

// WithFileMode sets the permissions of the written notes file.
func WithFileMode(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}
