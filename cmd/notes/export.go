// ABOUTME: Export command for backing up notes.
// ABOUTME: Writes the JSON file format or one markdown file per note with YAML frontmatter.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/notes/internal/models"
	"github.com/harper/notes/internal/store"
	"github.com/harper/notes/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long:  `Export notes as a JSON array (the notes file format) or as a directory of markdown files.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		notes := noteStore.List()
		switch format {
		case "json":
			return exportJSON(cmd, notes, outputPath)
		case "md":
			return exportMarkdown(cmd, notes, outputPath)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func exportJSON(cmd *cobra.Command, notes []*models.Note, outputPath string) error {
	records := make([]models.Record, 0, len(notes))
	for _, n := range notes {
		records = append(records, n.ToRecord())
	}
	data, err := store.EncodeRecords(records)
	if err != nil {
		return err
	}

	if outputPath == "" || outputPath == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d notes to %s", len(notes), outputPath)))
	return nil
}

func exportMarkdown(cmd *cobra.Command, notes []*models.Note, outputDir string) error {
	if outputDir == "" {
		outputDir = "export"
	}
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return err
	}

	for _, n := range notes {
		data, err := renderMarkdown(n)
		if err != nil {
			return err
		}
		filename := fmt.Sprintf("%03d-%s.md", n.ID, sanitizeFilename(n.Title))
		if err := os.WriteFile(filepath.Join(outputDir, filename), data, 0600); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d notes to %s", len(notes), outputDir)))
	return nil
}

// renderMarkdown writes the note as YAML frontmatter followed by the body.
func renderMarkdown(n *models.Note) ([]byte, error) {
	frontmatter, err := yaml.Marshal(n.ToRecord())
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(frontmatter)
	sb.WriteString("---\n\n")
	sb.WriteString(n.Body)
	return []byte(sb.String()), nil
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "untitled"
	}
	return name
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	rootCmd.AddCommand(exportCmd)
}
