// ABOUTME: Import command for restoring notes from backup.
// ABOUTME: Accepts the JSON file format or markdown files with YAML frontmatter.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/notes/internal/models"
	"github.com/harper/notes/internal/store"
	"github.com/harper/notes/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import notes",
	Long: `Import notes from a JSON file, a markdown file, or a directory of markdown files.
Imported notes get new ids. For directories, --glob selects which files are read.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat path: %w", err)
		}

		var records []models.Record
		switch {
		case info.IsDir():
			pattern, _ := cmd.Flags().GetString("glob")
			records, err = readMarkdownDir(path, pattern)
		case strings.HasSuffix(path, ".json"):
			records, err = readJSON(path)
		default:
			var rec models.Record
			rec, err = readMarkdownFile(path)
			records = []models.Record{rec}
		}
		if err != nil {
			return err
		}

		count, err := noteStore.Import(records)
		if err != nil {
			return fmt.Errorf("failed to import notes: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Imported %d notes", count)))
		return nil
	},
}

func readJSON(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, err
	}
	return store.DecodeRecords(data)
}

func readMarkdownDir(dir, pattern string) ([]models.Record, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob %q", pattern)
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to match %q: %w", pattern, err)
	}

	var records []models.Record
	for _, match := range matches {
		path := filepath.Join(dir, filepath.FromSlash(match))
		rec, err := readMarkdownFile(path)
		if err != nil {
			logger.Warn("skipping file", "path", path, "err", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func readMarkdownFile(path string) (models.Record, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return models.Record{}, err
	}
	return parseMarkdown(string(data), strings.TrimSuffix(filepath.Base(path), ".md"))
}

// parseMarkdown reads optional frontmatter (title, created, updated) and
// uses the rest as the body. fallbackTitle applies when none is given; a
// missing created falls back to updated, and missing both means now.
func parseMarkdown(content, fallbackTitle string) (models.Record, error) {
	var frontmatter struct {
		Title   string    `yaml:"title"`
		Created time.Time `yaml:"created"`
		Updated time.Time `yaml:"updated"`
	}

	if strings.HasPrefix(content, "---\n") {
		parts := strings.SplitN(content, "---\n", 3)
		if len(parts) == 3 {
			if err := yaml.Unmarshal([]byte(parts[1]), &frontmatter); err != nil {
				return models.Record{}, fmt.Errorf("parse frontmatter: %w", err)
			}
			content = parts[2]
		}
	}

	if frontmatter.Created.IsZero() && frontmatter.Updated.IsZero() {
		now := time.Now()
		frontmatter.Created, frontmatter.Updated = now, now
	}
	if frontmatter.Created.IsZero() {
		frontmatter.Created = frontmatter.Updated
	}
	if frontmatter.Updated.IsZero() {
		frontmatter.Updated = frontmatter.Created
	}

	title := frontmatter.Title
	if title == "" {
		title = fallbackTitle
	}
	return models.Record{
		Title:     title,
		Body:      strings.TrimPrefix(content, "\n"),
		CreatedAt: frontmatter.Created,
		UpdatedAt: frontmatter.Updated,
	}, nil
}

func init() {
	importCmd.Flags().String("glob", "**/*.md", "files to import when <path> is a directory")
	rootCmd.AddCommand(importCmd)
}
