// ABOUTME: Tests for the MCP tool, resource, and prompt handlers.
// ABOUTME: Calls handlers directly against a temp database.

package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/harper/litenotes/internal/db"
	"github.com/harper/litenotes/internal/models"
	"github.com/harper/litenotes/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := zaptest.NewLogger(t)
	gw, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), db.Options{
		SeedCategories: []string{"Work", "Personal"},
		Logger:         log,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })

	categories := db.NewCategoryStore(gw)
	return NewServer(
		service.NewNoteService(db.NewNoteStore(gw), categories, true, log),
		service.NewCategoryService(categories),
		log,
	)
}

func callTool(t *testing.T, h func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), args string) *mcp.CallToolResult {
	t.Helper()
	res, err := h(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestNoteTools(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s.handleAddNote, `{"title": "Buy milk", "category_id": 1}`)
	assert.False(t, res.IsError, resultText(t, res))
	assert.Equal(t, "Created note 1", resultText(t, res))

	res = callTool(t, s.handleListNotes, `{}`)
	var notes []*models.Note
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Work", notes[0].CategoryName())

	res = callTool(t, s.handleListNotes, `{"category_id": 2}`)
	notes = nil
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &notes))
	assert.Empty(t, notes)

	res = callTool(t, s.handleUpdateNote, `{"id": 1, "title": "Buy oat milk"}`)
	assert.False(t, res.IsError, resultText(t, res))

	res = callTool(t, s.handleGetNote, `{"id": 1}`)
	var note models.Note
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &note))
	assert.Equal(t, "Buy oat milk", note.Title)

	res = callTool(t, s.handleDeleteNote, `{"id": 1}`)
	assert.False(t, res.IsError)

	res = callTool(t, s.handleGetNote, `{"id": 1}`)
	assert.True(t, res.IsError)
}

func TestAddNoteValidationIsToolError(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s.handleAddNote, `{"title": "   ", "category_id": 1}`)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "title")

	res = callTool(t, s.handleAddNote, `{"title": "No category"}`)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "category")

	res = callTool(t, s.handleListNotes, "")
	assert.Equal(t, "[]", resultText(t, res))
}

func TestListCategoriesTool(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s.handleListCategories, "")
	var categories []*models.Category
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "Personal", categories[0].Name)
}

func TestExportNotesTool(t *testing.T) {
	s := newTestServer(t)
	callTool(t, s.handleAddNote, `{"title": "Standup", "category_id": 2}`)

	res := callTool(t, s.handleExportNotes, `{}`)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"title": "Standup"`)
}

func TestReadResource(t *testing.T) {
	s := newTestServer(t)
	callTool(t, s.handleAddNote, `{"title": "Plan", "content": "ship it", "category_id": 2}`)

	res, err := s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "litenotes://note/1"},
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "# Plan")
	assert.Contains(t, res.Contents[0].Text, "Personal")
	assert.Contains(t, res.Contents[0].Text, "ship it")

	_, err = s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "litenotes://note/abc"},
	})
	assert.Error(t, err)
}

func TestSummarizeCategoryPrompt(t *testing.T) {
	s := newTestServer(t)
	callTool(t, s.handleAddNote, `{"title": "Standup", "content": "sync at 9", "category_id": 1}`)

	res, err := s.getSummarizeCategoryPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      "summarize-category",
			Arguments: map[string]string{"category": "work"},
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	text, ok := res.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Standup")
	assert.Contains(t, text.Text, "sync at 9")

	_, err = s.getSummarizeCategoryPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Arguments: map[string]string{"category": "Travel"}},
	})
	assert.ErrorIs(t, err, db.ErrCategoryNotFound)
}
