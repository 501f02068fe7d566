// ABOUTME: Backup documents for notes and categories.
// ABOUTME: Builds export snapshots and writes them as JSON or markdown files.

package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harper/litenotes/internal/models"
	"gopkg.in/yaml.v3"
)

const FormatVersion = "1.0"

// Note is the exported form of a note. Category holds the category name so
// a document can be imported into a database with different ids.
type Note struct {
	ID       int64  `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Content  string `json:"content" yaml:"-"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

type Document struct {
	ID         string             `json:"id"`
	ExportedAt time.Time          `json:"exported_at"`
	Version    string             `json:"version"`
	Categories []*models.Category `json:"categories"`
	Notes      []Note             `json:"notes"`
}

type noteLister interface {
	ListAll(ctx context.Context) ([]*models.Note, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*models.Note, error)
}

type categoryLister interface {
	ListAll(ctx context.Context) ([]*models.Category, error)
}

// Build snapshots the current notes. A categoryID of 0 exports every note.
func Build(ctx context.Context, notes noteLister, categories categoryLister, categoryID int64) (*Document, error) {
	cats, err := categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	var list []*models.Note
	if categoryID == 0 {
		list, err = notes.ListAll(ctx)
	} else {
		list, err = notes.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	doc := &Document{
		ID:         uuid.NewString(),
		ExportedAt: time.Now().UTC(),
		Version:    FormatVersion,
		Categories: cats,
		Notes:      make([]Note, 0, len(list)),
	}
	for _, n := range list {
		doc.Notes = append(doc.Notes, Note{
			ID:       n.ID,
			Title:    n.Title,
			Content:  n.Content,
			Category: n.CategoryName(),
		})
	}
	return doc, nil
}

func WriteJSON(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteMarkdown writes one file per note into dir and returns the paths.
func WriteMarkdown(dir string, doc *Document) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	paths := make([]string, 0, len(doc.Notes))
	for _, n := range doc.Notes {
		var sb strings.Builder
		sb.WriteString("---\n")

		frontmatter, err := yaml.Marshal(n)
		if err != nil {
			return paths, fmt.Errorf("encode frontmatter for note %d: %w", n.ID, err)
		}
		sb.Write(frontmatter)
		sb.WriteString("---\n\n")
		sb.WriteString(n.Content)

		path := filepath.Join(dir, fmt.Sprintf("%d-%s.md", n.ID, sanitizeFilename(n.Title)))
		if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

const maxFilenameRunes = 100

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = strings.TrimSpace(replacer.Replace(name))
	if runes := []rune(name); len(runes) > maxFilenameRunes {
		name = string(runes[:maxFilenameRunes])
	}
	return name
}
