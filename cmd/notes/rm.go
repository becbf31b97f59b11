// ABOUTME: Remove command for deleting notes.
// ABOUTME: Includes confirmation prompt before deletion.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/notes/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		note, err := noteStore.Get(id)
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		out := cmd.OutOrStdout()
		if !force {
			fmt.Fprintf(out, "Delete note %q (%d)? [y/N] ", note.Title, note.ID)
			reader := bufio.NewReader(cmd.InOrStdin())
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		if err := noteStore.Delete(id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Deleted note %d", id)))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
