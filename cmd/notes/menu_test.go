// ABOUTME: Tests for the interactive menu loop.
// ABOUTME: Feeds scripted stdin and checks store state and printed output.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/notes/internal/models"
	"github.com/harper/notes/internal/store"
)

func init() {
	color.NoColor = true
}

func newMenuStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "notes.json"))
	require.NoError(t, err)
	return st
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestMenuAddAndList(t *testing.T) {
	st := newMenuStore(t)
	var out bytes.Buffer

	err := runMenu(st, script("1", "Shopping", "milk", "5", "7"), &out)
	require.NoError(t, err)

	require.Equal(t, 1, st.Len())
	assert.Contains(t, out.String(), "Created note 1")
	assert.Contains(t, out.String(), "1: Shopping")
	assert.Contains(t, out.String(), "milk")
}

func TestMenuEditEmptyInputsKeepFields(t *testing.T) {
	st := newMenuStore(t)
	_, err := st.Add("Title", "Body")
	require.NoError(t, err)
	var out bytes.Buffer

	err = runMenu(st, script("2", "1", "", "New body", "7"), &out)
	require.NoError(t, err)

	note, err := st.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Title", note.Title)
	assert.Equal(t, "New body", note.Body)
}

func TestMenuReportsErrorsAndContinues(t *testing.T) {
	st := newMenuStore(t)
	var out bytes.Buffer

	err := runMenu(st, script("4", "9", "3", "abc", "9", "6", "bad-date", "1", "After", "errors", "7"), &out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "id=9 not found")
	assert.Contains(t, output, `invalid id "abc"`)
	assert.Contains(t, output, `invalid choice "9"`)
	assert.Contains(t, output, `invalid date "bad-date"`)
	assert.Equal(t, 1, st.Len(), "loop kept running after errors")
}

func TestMenuDelete(t *testing.T) {
	st := newMenuStore(t)
	for _, title := range []string{"a", "b", "c"} {
		_, err := st.Add(title, "")
		require.NoError(t, err)
	}
	var out bytes.Buffer

	require.NoError(t, runMenu(st, script("3", "2", "7"), &out))

	assert.Equal(t, 2, st.Len())
	assert.Contains(t, out.String(), "Deleted note 2")
}

func TestMenuFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	day := func(d int) time.Time { return time.Date(2024, 1, d, 12, 0, 0, 0, time.Local) }
	data, err := store.EncodeRecords([]models.Record{
		{ID: 1, Title: "new-year", CreatedAt: day(1), UpdatedAt: day(1)},
		{ID: 2, Title: "mid", CreatedAt: day(5), UpdatedAt: day(5)},
		{ID: 3, Title: "later", CreatedAt: day(10), UpdatedAt: day(10)},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))
	st, err := store.Open(path)
	require.NoError(t, err)
	var out bytes.Buffer

	require.NoError(t, runMenu(st, script("6", "2024-01-02", "2024-01-09", "7"), &out))

	output := out.String()
	assert.Contains(t, output, "2: mid")
	assert.NotContains(t, output, "new-year")
	assert.NotContains(t, output, "later")
}

func TestMenuExitsOnEOF(t *testing.T) {
	st := newMenuStore(t)
	var out bytes.Buffer

	assert.NoError(t, runMenu(st, strings.NewReader(""), &out))
	assert.NoError(t, runMenu(st, strings.NewReader("1\nonly title"), &out))
	assert.Equal(t, 0, st.Len())
}

func TestMenuAcceptsLongLines(t *testing.T) {
	st := newMenuStore(t)
	var out bytes.Buffer
	body := strings.Repeat("x", 70*1024)

	err := runMenu(st, script("1", "Long", body, "5", "7"), &out)
	require.NoError(t, err)

	require.Equal(t, 1, st.Len())
	note, err := st.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Long", note.Title)
	assert.Len(t, note.Body, 70*1024)
}

func TestMenuLastLineWithoutNewline(t *testing.T) {
	st := newMenuStore(t)
	var out bytes.Buffer

	err := runMenu(st, strings.NewReader("1\nTitle\r\nno newline"), &out)
	require.NoError(t, err)

	note, err := st.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Title", note.Title)
	assert.Equal(t, "no newline", note.Body)
}
