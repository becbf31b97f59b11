// ABOUTME: Tests for terminal UI formatting functions.
// ABOUTME: Validates note display blocks, menu text, and markdown rendering.

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/harper/notes/internal/models"
)

func init() {
	color.NoColor = true
}

func TestFormatNote(t *testing.T) {
	created := time.Date(2024, 1, 5, 9, 15, 0, 0, time.UTC)
	updated := time.Date(2024, 1, 6, 18, 0, 30, 0, time.UTC)
	note := models.NewNote(3, "Groceries", "milk, eggs", models.WithCreatedAt(created), models.WithUpdatedAt(updated))

	output := FormatNote(note)
	lines := strings.Split(output, "\n")

	if lines[0] != "3: Groceries" {
		t.Errorf("expected id and title line, got %q", lines[0])
	}
	if lines[1] != "milk, eggs" {
		t.Errorf("expected body line, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "2024-01-05 09:15:00") {
		t.Errorf("expected created timestamp, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "2024-01-06 18:00:30") {
		t.Errorf("expected updated timestamp, got %q", lines[3])
	}
	if !strings.HasSuffix(output, "\n\n") {
		t.Error("expected trailing blank line")
	}
}

func TestFormatNoteListItem(t *testing.T) {
	note := models.NewNote(12, "Test Note", "")

	output := FormatNoteListItem(note)

	if !strings.Contains(output, "12") {
		t.Error("expected output to contain ID")
	}
	if !strings.Contains(output, "Test Note") {
		t.Error("expected output to contain title")
	}
}

func TestFormatNoteContent(t *testing.T) {
	content := "# Hello\n\nThis is **bold** text."

	output, err := FormatNoteContent(content, RenderOptions{Style: "notty", WordWrap: 80})
	if err != nil {
		t.Fatalf("failed to format content: %v", err)
	}
	if !strings.Contains(output, "Hello") {
		t.Errorf("expected rendered heading, got %q", output)
	}
}

func TestFormatMenu(t *testing.T) {
	output := FormatMenu()

	for _, want := range []string{"1. Add", "6. Filter by date", "7. Exit"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected menu to contain %q", want)
		}
	}
}
