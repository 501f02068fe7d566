// ABOUTME: Restores notes from export documents.
// ABOUTME: Reads JSON or markdown backups and recreates notes through the note rules.

package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/harper/litenotes/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const markdownPattern = "**/*.md"

var markdown = goldmark.New()

type noteCreator interface {
	Create(ctx context.Context, note *models.Note) (int64, error)
}

// Failure records a note that could not be imported.
type Failure struct {
	Title string
	Err   error
}

type Result struct {
	Imported int
	Failures []Failure
}

func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return &doc, nil
}

// ReadMarkdownDir collects every .md file under dir into a document. Titles
// come from the frontmatter, then the first level-one heading, then the file
// name.
func ReadMarkdownDir(dir string) (*Document, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, markdownPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	doc := &Document{Version: FormatVersion}
	for _, name := range matches {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name))) //nolint:gosec // User-specified path is expected CLI behavior
		if err != nil {
			return nil, fmt.Errorf("read markdown: %w", err)
		}
		doc.Notes = append(doc.Notes, parseMarkdown(path.Base(name), string(data)))
	}
	return doc, nil
}

func parseMarkdown(filename, content string) Note {
	var n Note

	if frontmatter, body, ok := splitFrontmatter(content); ok {
		if err := yaml.Unmarshal([]byte(frontmatter), &n); err == nil {
			content = body
		}
	}

	if strings.TrimSpace(n.Title) == "" {
		n.Title = firstHeading([]byte(content))
	}
	if n.Title == "" {
		n.Title = strings.TrimSuffix(filename, ".md")
	}
	n.Content = content
	return n
}

// splitFrontmatter separates a leading "---" fenced YAML block from the body.
// The closing fence must be a line that is exactly "---". The single blank
// line WriteMarkdown puts after the fence is dropped; the body is otherwise
// returned untouched.
func splitFrontmatter(content string) (frontmatter, body string, ok bool) {
	rest, found := strings.CutPrefix(content, "---\n")
	if !found {
		return "", content, false
	}

	switch {
	case strings.HasPrefix(rest, "---\n"):
		body = rest[len("---\n"):]
	case rest == "---":
	default:
		idx := strings.Index(rest, "\n---\n")
		if idx < 0 {
			if !strings.HasSuffix(rest, "\n---") {
				return "", content, false
			}
			return rest[:len(rest)-len("---")], "", true
		}
		frontmatter = rest[:idx+1]
		body = rest[idx+len("\n---\n"):]
	}

	return frontmatter, strings.TrimPrefix(body, "\n"), true
}

// firstHeading returns the text of the first level-one heading, or "".
func firstHeading(src []byte) string {
	root := markdown.Parser().Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		heading, ok := node.(*ast.Heading)
		if !entering || !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}
		var sb strings.Builder
		writeText(&sb, heading, src)
		title = strings.TrimSpace(sb.String())
		return ast.WalkStop, nil
	})
	return title
}

func writeText(sb *strings.Builder, node ast.Node, src []byte) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
			continue
		}
		writeText(sb, c, src)
	}
}

// Import creates every note in doc. Categories are matched by name; a name
// with no match leaves the note unassigned, which the note rules reject when
// a category is required. Per-note failures are collected, not fatal.
func Import(ctx context.Context, doc *Document, notes noteCreator, categories categoryLister) (*Result, error) {
	cats, err := categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := &Result{}
	for _, en := range doc.Notes {
		note := models.NewNote(en.Title, en.Content, matchCategory(cats, en.Category))
		if _, err := notes.Create(ctx, note); err != nil {
			result.Failures = append(result.Failures, Failure{Title: en.Title, Err: err})
			continue
		}
		result.Imported++
	}
	return result, nil
}

func matchCategory(categories []*models.Category, name string) *models.Category {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	for _, c := range categories {
		if c.Matches(name) {
			return c
		}
	}
	return nil
}
