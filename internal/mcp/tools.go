// ABOUTME: MCP tools for note CRUD and date filtering.
// ABOUTME: Maps store operations onto the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/notes/internal/models"
	"github.com/harper/notes/internal/store"
)

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "add_note",
		Description: "Create a new note with a title and body",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"body": {"type": "string", "description": "Note body"}
			},
			"required": ["title", "body"]
		}`),
	}, s.handleAddNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "edit_note",
		Description: "Change a note's title and/or body; omitted fields are left unchanged",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"},
				"title": {"type": "string", "description": "New title"},
				"body": {"type": "string", "description": "New body"}
			},
			"required": ["id"]
		}`),
	}, s.handleEditNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "get_note",
		Description: "Get a note by ID",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List all notes in creation order",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListNotes)

	s.server.AddTool(&mcp.Tool{
		Name:        "filter_notes",
		Description: "List notes created within an inclusive date range",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"from": {"type": "string", "description": "Start date (YYYY-MM-DD), optional"},
				"to": {"type": "string", "description": "End date (YYYY-MM-DD), optional"}
			}
		}`),
	}, s.handleFilterNotes)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func notesResult(notes []*models.Note) *mcp.CallToolResult {
	records := make([]models.Record, 0, len(notes))
	for _, n := range notes {
		records = append(records, n.ToRecord())
	}
	data, _ := json.MarshalIndent(records, "", "  ")
	return textResult(string(data))
}

func unmarshalArgs(req *mcp.CallToolRequest, v any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	return json.Unmarshal(req.Params.Arguments, v)
}

func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note, err := s.store.Add(params.Title, params.Body)
	if err != nil {
		return errorResult("failed to create note: %v", err), nil
	}
	return textResult(fmt.Sprintf("Created note %d", note.ID)), nil
}

func (s *Server) handleEditNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID    int     `json:"id"`
		Title *string `json:"title"`
		Body  *string `json:"body"`
	}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note, err := s.store.Edit(params.ID, store.Patch{Title: params.Title, Body: params.Body})
	if err != nil {
		return errorResult("failed to update note: %v", err), nil
	}
	return textResult(fmt.Sprintf("Updated note %d", note.ID)), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID int `json:"id"`
	}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(params.ID); err != nil {
		return errorResult("failed to delete note: %v", err), nil
	}
	return textResult(fmt.Sprintf("Deleted note %d", params.ID)), nil
}

func (s *Server) handleGetNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID int `json:"id"`
	}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note, err := s.store.Get(params.ID)
	if err != nil {
		return errorResult("failed to get note: %v", err), nil
	}

	data, _ := json.MarshalIndent(note.ToRecord(), "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return notesResult(s.store.List()), nil
}

func (s *Server) handleFilterNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}

	start, end, err := parseRange(params.From, params.To)
	if err != nil {
		return errorResult("%v", err), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return notesResult(s.store.FilterByDate(start, end)), nil
}

func parseRange(from, to string) (*store.Date, *store.Date, error) {
	var start, end *store.Date
	if from != "" {
		d, err := store.ParseDate(from)
		if err != nil {
			return nil, nil, err
		}
		start = &d
	}
	if to != "" {
		d, err := store.ParseDate(to)
		if err != nil {
			return nil, nil, err
		}
		end = &d
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, errors.New("end date is before start date")
	}
	return start, end, nil
}
