// ABOUTME: JSON file codec for the notes file.
// ABOUTME: Converts records to and from the on-disk array with ISO-8601 timestamp text.

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/notes/internal/models"
)

// fileRecord is one element of the persisted JSON array.
type fileRecord struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Offset-less layouts are read in local time.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
}

func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

func encodeNotes(notes []*models.Note) ([]byte, error) {
	records := make([]fileRecord, 0, len(notes))
	for _, n := range notes {
		rec := n.ToRecord()
		records = append(records, fileRecord{
			ID:        rec.ID,
			Title:     rec.Title,
			Body:      rec.Body,
			CreatedAt: FormatTimestamp(rec.CreatedAt),
			UpdatedAt: FormatTimestamp(rec.UpdatedAt),
		})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return append(data, '\n'), nil
}

// DecodeRecords parses a notes file body into records.
func DecodeRecords(data []byte) ([]models.Record, error) {
	var raw []fileRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse notes: %w", err)
	}

	records := make([]models.Record, 0, len(raw))
	for i, fr := range raw {
		createdAt, err := ParseTimestamp(fr.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("note %d (index %d) created_at: %w", fr.ID, i, err)
		}
		updatedAt, err := ParseTimestamp(fr.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("note %d (index %d) updated_at: %w", fr.ID, i, err)
		}
		records = append(records, models.Record{
			ID:        fr.ID,
			Title:     fr.Title,
			Body:      fr.Body,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		})
	}
	return records, nil
}

// EncodeRecords renders records in the notes file format.
func EncodeRecords(records []models.Record) ([]byte, error) {
	notes := make([]*models.Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, models.FromRecord(r))
	}
	return encodeNotes(notes)
}
