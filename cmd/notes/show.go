// ABOUTME: Show command for displaying a single note.
// ABOUTME: Optionally renders the body as markdown with glamour.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harper/notes/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		render, _ := cmd.Flags().GetBool("render")

		note, err := noteStore.Get(id)
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		out := cmd.OutOrStdout()
		if !render {
			fmt.Fprint(out, ui.FormatNote(note))
			return nil
		}

		fmt.Fprint(out, ui.FormatNoteHeader(note))
		content, _ := ui.FormatNoteContent(note.Body, ui.RenderOptions{
			Style:    cfg.Style,
			WordWrap: cfg.WordWrap,
		})
		fmt.Fprint(out, content)
		return nil
	},
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", arg)
	}
	return id, nil
}

func init() {
	showCmd.Flags().BoolP("render", "r", false, "render the body as markdown")
	rootCmd.AddCommand(showCmd)
}
