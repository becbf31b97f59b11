// ABOUTME: Terminal UI formatting for notes output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/harper/notes/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatNote renders the full display block for one note, ending with a blank line.
func FormatNote(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", cyan(fmt.Sprintf("%d:", note.ID)), bold(note.Title)))
	sb.WriteString(note.Body + "\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), note.CreatedAt.Format(timeLayout)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), note.UpdatedAt.Format(timeLayout)))
	sb.WriteString("\n")

	return sb.String()
}

func FormatNotes(notes []*models.Note) string {
	var sb strings.Builder
	for _, n := range notes {
		sb.WriteString(FormatNote(n))
	}
	return sb.String()
}

// FormatNoteListItem renders a compact one-entry summary.
func FormatNoteListItem(note *models.Note) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		faint(fmt.Sprintf("%4d", note.ID)),
		bold(note.Title),
		faint(note.UpdatedAt.Format("2006-01-02 15:04")))
}

func FormatNoteHeader(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(note.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(fmt.Sprint(note.ID))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(note.CreatedAt.Format("2006-01-02 15:04"))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(note.UpdatedAt.Format("2006-01-02 15:04"))))

	sb.WriteString(Separator())
	return sb.String()
}

// RenderOptions controls markdown rendering of note bodies.
type RenderOptions struct {
	Style    string
	WordWrap int
}

func FormatNoteContent(content string, opts RenderOptions) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(opts.WordWrap),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func Empty() string {
	return faint("No notes found.")
}
