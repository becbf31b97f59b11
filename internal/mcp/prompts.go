// ABOUTME: MCP prompts for common note workflows.
// ABOUTME: Provides pre-configured prompts that drive the note tools.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "summarize-note",
		Description: "Generate a summary of an existing note",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "note_id",
				Description: "ID of the note to summarize",
				Required:    true,
			},
		},
	}, s.getSummarizeNotePrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "review-period",
		Description: "Review the notes written during a date range",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "from",
				Description: "Start date (YYYY-MM-DD)",
			},
			{
				Name:        "to",
				Description: "End date (YYYY-MM-DD)",
			},
		},
	}, s.getReviewPeriodPrompt)
}

func promptResult(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: text,
				},
			},
		},
	}
}

func (s *Server) getSummarizeNotePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	noteID, ok := req.Params.Arguments["note_id"]
	if !ok || noteID == "" {
		return nil, fmt.Errorf("note_id argument is required")
	}

	return promptResult(fmt.Sprintf(`Please summarize the note with ID: %s

1. Use the get_note tool to retrieve the note
2. Read and analyze the note
3. Create a concise summary highlighting:
   - Main topic or theme
   - Key points or takeaways
   - Important details or action items
4. Use the edit_note tool to prepend the summary to the note body`, noteID)), nil
}

func (s *Server) getReviewPeriodPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	from := req.Params.Arguments["from"]
	to := req.Params.Arguments["to"]
	if _, _, err := parseRange(from, to); err != nil {
		return nil, err
	}

	period := "all time"
	switch {
	case from != "" && to != "":
		period = fmt.Sprintf("%s to %s", from, to)
	case from != "":
		period = "since " + from
	case to != "":
		period = "up to " + to
	}

	return promptResult(fmt.Sprintf(`Review my notes for %s.

1. Use the filter_notes tool with from=%q and to=%q
2. Group the notes by theme
3. List open questions or unfinished items
4. Suggest which notes could be merged or deleted, citing note IDs`, period, from, to)), nil
}
