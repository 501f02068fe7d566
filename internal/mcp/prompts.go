// ABOUTME: MCP prompts for common note-taking workflows.
// ABOUTME: Provides pre-configured prompts built from stored notes.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/litenotes/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "summarize-category",
		Description: "Summarize every note in one category",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "category",
				Description: "Category ID or name",
				Required:    true,
			},
		},
	}, s.getSummarizeCategoryPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "organize-notes",
		Description: "Get suggestions for moving notes into better categories",
	}, s.getOrganizeNotesPrompt)
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

func (s *Server) getSummarizeCategoryPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	ref := req.Params.Arguments["category"]
	if strings.TrimSpace(ref) == "" {
		return nil, fmt.Errorf("category argument is required")
	}

	category, err := s.categories.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize my notes in the %q category.\n\n", ui.CategoryLabel(category))
	if len(notes) == 0 {
		sb.WriteString("There are no notes in this category yet. Say so and suggest what could go here.\n")
		return promptResult(sb.String()), nil
	}

	for _, n := range notes {
		fmt.Fprintf(&sb, "## %s (note %d)\n\n%s\n\n", ui.NoteLabel(n), n.ID, n.Content)
	}
	sb.WriteString(`Provide:
1. The main themes across these notes
2. Any action items or open questions
3. Notes that overlap and could be merged (use get_note and update_note to do so)`)

	return promptResult(sb.String()), nil
}

func (s *Server) getOrganizeNotesPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	template := `Help me organize my notes by:

1. Use the list_categories tool to see the available categories
2. Use the list_notes tool to see all my notes
3. Identify notes whose category does not fit their content
4. Suggest a better category for each, by ID

Only use update_note with a category_id after I confirm the suggestions.`

	return promptResult(template), nil
}
