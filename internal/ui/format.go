// ABOUTME: Terminal UI formatting for litenotes output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/litenotes/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// AllCategories is the filter choice meaning "no filter". It never reaches
// storage.
var AllCategories = &models.Category{ID: 0, Name: "All"}

// IsAllCategories reports whether c selects every note.
func IsAllCategories(c *models.Category) bool {
	return c == nil || c.ID == 0
}

func NoteLabel(note *models.Note) string {
	if !note.HasTitle() {
		return "(untitled)"
	}
	return note.Title
}

func CategoryLabel(c *models.Category) string {
	if c == nil {
		return "Uncategorized"
	}
	if c.Name == "" {
		return fmt.Sprintf("#%d", c.ID)
	}
	return c.Name
}

// FilterChoices returns the category filter options with AllCategories first.
func FilterChoices(categories []*models.Category) []*models.Category {
	choices := make([]*models.Category, 0, len(categories)+1)
	choices = append(choices, AllCategories)
	return append(choices, categories...)
}

func FormatNoteListItem(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(fmt.Sprintf("%4d", note.ID)), bold(NoteLabel(note))))
	sb.WriteString(fmt.Sprintf("        %s %s\n", faint("Category:"), cyan(CategoryLabel(note.Category))))

	return sb.String()
}

func FormatNoteList(notes []*models.Note) string {
	if len(notes) == 0 {
		return faint("  No notes.") + "\n"
	}

	var sb strings.Builder
	for _, n := range notes {
		sb.WriteString(FormatNoteListItem(n))
	}
	return sb.String()
}

func FormatNoteContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content, nil //nolint:nilerr // raw content is an acceptable fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // raw content is an acceptable fallback
	}
	return out, nil
}

func FormatNoteHeader(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(NoteLabel(note))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(fmt.Sprint(note.ID))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Category:"), cyan(CategoryLabel(note.Category))))

	sb.WriteString(Separator())
	return sb.String()
}

func FormatCategoryList(categories []*models.Category) string {
	var sb strings.Builder

	for _, c := range categories {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			faint(fmt.Sprintf("%4d", c.ID)),
			cyan(CategoryLabel(c))))
	}

	return sb.String()
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
