// ABOUTME: Tests for the notes file codec.
// ABOUTME: Checks timestamp parsing across ISO-8601 variants and the on-disk field names.

package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/harper/notes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339 utc", "2024-01-05T10:20:30Z", time.Date(2024, 1, 5, 10, 20, 30, 0, time.UTC)},
		{"rfc3339 nano offset", "2024-01-05T10:20:30.123456789+02:00", time.Date(2024, 1, 5, 8, 20, 30, 123456789, time.UTC)},
		{"naive micro", "2024-01-05T10:20:30.123456", time.Date(2024, 1, 5, 10, 20, 30, 123456000, time.Local)},
		{"naive seconds", "2024-01-05T10:20:30", time.Date(2024, 1, 5, 10, 20, 30, 0, time.Local)},
		{"space separator", "2024-01-05 10:20:30.5", time.Date(2024, 1, 5, 10, 20, 30, 500000000, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v got %v", tt.want, got)
		})
	}

	_, err := ParseTimestamp("05/01/2024")
	assert.Error(t, err)
}

func TestEncodeUsesFileFieldNames(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 250000000, time.UTC)
	data, err := EncodeRecords([]models.Record{
		{ID: 1, Title: "A", Body: "1", CreatedAt: created, UpdatedAt: created},
	})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, float64(1), raw[0]["id"])
	assert.Equal(t, "A", raw[0]["title"])
	assert.Equal(t, "1", raw[0]["body"])
	assert.Equal(t, "2024-01-01T12:00:00.25Z", raw[0]["created_at"])
	assert.Equal(t, "2024-01-01T12:00:00.25Z", raw[0]["updated_at"])
}

func TestEncodeEmptyIsArray(t *testing.T) {
	data, err := EncodeRecords(nil)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestDecodeRejectsObject(t *testing.T) {
	_, err := DecodeRecords([]byte(`{"id": 1}`))
	assert.Error(t, err)
}
