// ABOUTME: List and filter commands for displaying notes.
// ABOUTME: filter restricts by created_at date; both can emit the JSON file format.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harper/notes/internal/models"
	"github.com/harper/notes/internal/store"
	"github.com/harper/notes/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List all notes in the order they were created.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		short, _ := cmd.Flags().GetBool("short")
		return printNotes(cmd.OutOrStdout(), noteStore.List(), asJSON, short)
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List notes created within a date range",
	Long:  `List notes whose creation date lies within --from and --to (inclusive). Either bound may be omitted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		asJSON, _ := cmd.Flags().GetBool("json")
		short, _ := cmd.Flags().GetBool("short")

		var start, end *store.Date
		if fromFlag != "" {
			d, err := store.ParseDate(fromFlag)
			if err != nil {
				return err
			}
			start = &d
		}
		if toFlag != "" {
			d, err := store.ParseDate(toFlag)
			if err != nil {
				return err
			}
			end = &d
		}

		return printNotes(cmd.OutOrStdout(), noteStore.FilterByDate(start, end), asJSON, short)
	},
}

func printNotes(out io.Writer, notes []*models.Note, asJSON, short bool) error {
	if asJSON {
		records := make([]models.Record, 0, len(notes))
		for _, n := range notes {
			records = append(records, n.ToRecord())
		}
		data, err := store.EncodeRecords(records)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(out, ui.Empty())
		return nil
	}
	for _, n := range notes {
		if short {
			fmt.Fprint(out, ui.FormatNoteListItem(n))
			continue
		}
		fmt.Fprint(out, ui.FormatNote(n))
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{listCmd, filterCmd} {
		c.Flags().Bool("json", false, "output in the notes file JSON format")
		c.Flags().BoolP("short", "s", false, "one line per note")
	}
	filterCmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	filterCmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(filterCmd)
}
