// ABOUTME: Edit command for modifying existing notes.
// ABOUTME: Only flags that are given change a field; with none, the body opens in $EDITOR.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/notes/internal/store"
	"github.com/harper/notes/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Long: `Change a note's title and/or body. Fields whose flag is not given are left as they are.
With neither --title nor --body, the body is opened in $EDITOR.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var patch store.Patch
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			patch.Title = &title
		}
		if cmd.Flags().Changed("body") {
			body, _ := cmd.Flags().GetString("body")
			patch.Body = &body
		}

		if patch.Title == nil && patch.Body == nil {
			note, err := noteStore.Get(id)
			if err != nil {
				return fmt.Errorf("failed to get note: %w", err)
			}
			body, err := openEditor(note.Body)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
			if body == note.Body {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes made.")
				return nil
			}
			patch.Body = &body
		}

		if _, err := noteStore.Edit(id, patch); err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Updated note %d", id)))
		return nil
	},
}

func init() {
	editCmd.Flags().StringP("title", "t", "", "new title")
	editCmd.Flags().StringP("body", "b", "", "new body")
	rootCmd.AddCommand(editCmd)
}
