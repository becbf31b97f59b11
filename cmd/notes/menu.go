// ABOUTME: Interactive numbered menu driving the note store.
// ABOUTME: Reads one selection per iteration, reports errors, and keeps looping until exit.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harper/notes/internal/store"
	"github.com/harper/notes/internal/ui"
)

// errExit ends the loop normally.
var errExit = errors.New("exit")

type menu struct {
	store *store.Store
	in    *bufio.Reader
	out   io.Writer
}

func runMenu(st *store.Store, in io.Reader, out io.Writer) error {
	m := &menu{
		store: st,
		in:    bufio.NewReader(in),
		out:   out,
	}

	for {
		fmt.Fprint(m.out, ui.FormatMenu())
		choice, err := m.prompt(ui.PromptChoice)
		if err != nil {
			return nilOnEOF(err)
		}

		err = m.dispatch(strings.TrimSpace(choice))
		switch {
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(m.out)
			return nil
		case err != nil:
			fmt.Fprintln(m.out, ui.Error(err.Error()))
		}
	}
}

func nilOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// prompt writes label and reads one line of any length. It returns io.EOF
// when input ends; a final line without a newline is still returned.
func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *menu) promptID() (int, error) {
	raw, err := m.prompt(ui.PromptID)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", strings.TrimSpace(raw))
	}
	return id, nil
}

// promptOptional returns nil for an empty answer.
func (m *menu) promptOptional(label string) (*string, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	return &raw, nil
}

func (m *menu) promptDate(label string) (*store.Date, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := store.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (m *menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return m.add()
	case "2":
		return m.edit()
	case "3":
		return m.delete()
	case "4":
		return m.get()
	case "5":
		return m.list()
	case "6":
		return m.filter()
	case "7":
		return errExit
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

func (m *menu) add() error {
	title, err := m.prompt(ui.PromptTitle)
	if err != nil {
		return err
	}
	body, err := m.prompt(ui.PromptBody)
	if err != nil {
		return err
	}

	note, err := m.store.Add(title, body)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	fmt.Fprintln(m.out, ui.Success(fmt.Sprintf("Created note %d", note.ID)))
	return nil
}

func (m *menu) edit() error {
	id, err := m.promptID()
	if err != nil {
		return err
	}
	title, err := m.promptOptional(ui.PromptNewTitle)
	if err != nil {
		return err
	}
	body, err := m.promptOptional(ui.PromptNewBody)
	if err != nil {
		return err
	}

	if _, err := m.store.Edit(id, store.Patch{Title: title, Body: body}); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	fmt.Fprintln(m.out, ui.Success(fmt.Sprintf("Updated note %d", id)))
	return nil
}

func (m *menu) delete() error {
	id, err := m.promptID()
	if err != nil {
		return err
	}
	if err := m.store.Delete(id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	fmt.Fprintln(m.out, ui.Success(fmt.Sprintf("Deleted note %d", id)))
	return nil
}

func (m *menu) get() error {
	id, err := m.promptID()
	if err != nil {
		return err
	}
	note, err := m.store.Get(id)
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, ui.FormatNote(note))
	return nil
}

func (m *menu) list() error {
	notes := m.store.List()
	if len(notes) == 0 {
		fmt.Fprintln(m.out, ui.Empty())
		return nil
	}
	fmt.Fprint(m.out, ui.FormatNotes(notes))
	return nil
}

func (m *menu) filter() error {
	start, err := m.promptDate(ui.PromptStartDate)
	if err != nil {
		return err
	}
	end, err := m.promptDate(ui.PromptEndDate)
	if err != nil {
		return err
	}

	notes := m.store.FilterByDate(start, end)
	if len(notes) == 0 {
		fmt.Fprintln(m.out, ui.Empty())
		return nil
	}
	fmt.Fprint(m.out, ui.FormatNotes(notes))
	return nil
}
