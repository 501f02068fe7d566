// ABOUTME: MCP tools for note CRUD operations.
// ABOUTME: Maps the note and category rules to the MCP tool interface.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harper/litenotes/internal/db"
	"github.com/harper/litenotes/internal/export"
	"github.com/harper/litenotes/internal/models"
	"github.com/harper/litenotes/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "add_note",
		Description: "Create a new note with a title, optional content and a category",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"content": {"type": "string", "description": "Note content (markdown)"},
				"category_id": {"type": "integer", "description": "Category ID from list_categories"}
			},
			"required": ["title"]
		}`),
	}, s.handleAddNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List notes newest first, optionally filtered by category",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"category_id": {"type": "integer", "description": "Only notes in this category; 0 or omitted lists all"}
			}
		}`),
	}, s.handleListNotes)

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
		Name:        "update_note",
		Description: "Update a note's title, content or category",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"},
				"title": {"type": "string", "description": "New title"},
				"content": {"type": "string", "description": "New content"},
				"category_id": {"type": "integer", "description": "New category ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateNote)

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
		Name:        "list_categories",
		Description: "List the available categories ordered by name",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListCategories)

	s.server.AddTool(&mcp.Tool{
		Name:        "export_notes",
		Description: "Export notes and categories as a JSON document",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"category_id": {"type": "integer", "description": "Only export this category; 0 or omitted exports all"}
			}
		}`),
	}, s.handleExportNotes)
}

func decodeArgs(req *mcp.CallToolRequest, v any) error {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}
	return json.Unmarshal(req.Params.Arguments, v)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return textResult(string(data))
}

// errorResult reports a failed tool call to the agent. Validation failures
// and missing notes are expected; anything else is logged.
func (s *Server) errorResult(action string, err error) *mcp.CallToolResult {
	if !errors.Is(err, service.ErrValidation) && !errors.Is(err, db.ErrNoteNotFound) && !errors.Is(err, db.ErrCategoryNotFound) {
		s.log.Error("tool failed", zap.String("action", action), zap.Error(err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("failed to %s: %v", action, err)},
		},
		IsError: true,
	}
}

func categoryRef(id *int64) *models.Category {
	if id == nil {
		return nil
	}
	return &models.Category{ID: *id}
}

func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		CategoryID *int64 `json:"category_id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	note := models.NewNote(params.Title, params.Content, categoryRef(params.CategoryID))
	id, err := s.notes.Create(ctx, note)
	if err != nil {
		return s.errorResult("create note", err), nil
	}

	return textResult(fmt.Sprintf("Created note %d", id)), nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		CategoryID int64 `json:"category_id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	var (
		notes []*models.Note
		err   error
	)
	if params.CategoryID == 0 {
		notes, err = s.notes.ListAll(ctx)
	} else {
		notes, err = s.notes.ListByCategory(ctx, params.CategoryID)
	}
	if err != nil {
		return s.errorResult("list notes", err), nil
	}

	return jsonResult(notes), nil
}

func (s *Server) handleGetNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID int64 `json:"id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	note, err := s.notes.Get(ctx, params.ID)
	if err != nil {
		return s.errorResult("get note", err), nil
	}

	return jsonResult(note), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID         int64   `json:"id"`
		Title      *string `json:"title"`
		Content    *string `json:"content"`
		CategoryID *int64  `json:"category_id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	note, err := s.notes.Get(ctx, params.ID)
	if err != nil {
		return s.errorResult("find note", err), nil
	}

	if params.Title != nil {
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = *params.Content
	}
	if params.CategoryID != nil {
		note.Category = categoryRef(params.CategoryID)
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return s.errorResult("update note", err), nil
	}

	return textResult(fmt.Sprintf("Updated note %d", note.ID)), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID int64 `json:"id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	if err := s.notes.Delete(ctx, params.ID); err != nil {
		return s.errorResult("delete note", err), nil
	}

	return textResult(fmt.Sprintf("Deleted note %d", params.ID)), nil
}

func (s *Server) handleListCategories(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return s.errorResult("list categories", err), nil
	}

	return jsonResult(categories), nil
}

func (s *Server) handleExportNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		CategoryID int64 `json:"category_id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	doc, err := export.Build(ctx, s.notes, s.categories, params.CategoryID)
	if err != nil {
		return s.errorResult("export notes", err), nil
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, doc); err != nil {
		return s.errorResult("export notes", err), nil
	}
	return textResult(buf.String()), nil
}
