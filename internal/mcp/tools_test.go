// ABOUTME: Tests for MCP tool handlers.
// ABOUTME: Drives handlers directly against a temp-file store.

package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/notes/internal/models"
	"github.com/harper/notes/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "notes.json"))
	require.NoError(t, err)
	return NewServer(st, "test")
}

func call(t *testing.T, handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), args string) *mcp.CallToolResult {
	t.Helper()
	req := &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)}}
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestAddGetEditDelete(t *testing.T) {
	s := newTestServer(t)

	res := call(t, s.handleAddNote, `{"title": "A", "body": "1"}`)
	assert.False(t, res.IsError)
	assert.Equal(t, "Created note 1", resultText(t, res))

	res = call(t, s.handleEditNote, `{"id": 1, "title": "A2"}`)
	assert.False(t, res.IsError)

	res = call(t, s.handleGetNote, `{"id": 1}`)
	require.False(t, res.IsError)
	var rec models.Record
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rec))
	assert.Equal(t, "A2", rec.Title)
	assert.Equal(t, "1", rec.Body)

	res = call(t, s.handleDeleteNote, `{"id": 1}`)
	assert.False(t, res.IsError)

	res = call(t, s.handleGetNote, `{"id": 1}`)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "id=1 not found")
}

func TestListAndFilter(t *testing.T) {
	s := newTestServer(t)
	call(t, s.handleAddNote, `{"title": "A", "body": "1"}`)
	call(t, s.handleAddNote, `{"title": "B", "body": "2"}`)

	res := call(t, s.handleListNotes, `{}`)
	var recs []models.Record
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &recs))
	assert.Len(t, recs, 2)

	res = call(t, s.handleFilterNotes, `{"to": "2000-01-01"}`)
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &recs))
	assert.Empty(t, recs)

	res = call(t, s.handleFilterNotes, `{"from": "not-a-date"}`)
	assert.True(t, res.IsError)

	res = call(t, s.handleFilterNotes, `{"from": "2024-02-01", "to": "2024-01-01"}`)
	assert.True(t, res.IsError)
}
