// ABOUTME: Note model representing a short text note in a category.
// ABOUTME: Provides constructor and category helpers for the note lifecycle.

package models

import "strings"

// Note is a persisted text note. ID is zero until the store assigns one.
// Category is nil when the note is not assigned to any category.
type Note struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Category *Category `json:"category,omitempty"`
}

func NewNote(title, content string, category *Category) *Note {
	return &Note{
		Title:    title,
		Content:  content,
		Category: category,
	}
}

// CategoryID returns the referenced category id, or 0 when unassigned.
func (n *Note) CategoryID() int64 {
	if n.Category == nil {
		return 0
	}
	return n.Category.ID
}

// CategoryName returns the joined category name. It is empty for unassigned
// notes and for notes whose category row no longer exists.
func (n *Note) CategoryName() string {
	if n.Category == nil {
		return ""
	}
	return n.Category.Name
}

// HasTitle reports whether the title has any non-whitespace character.
func (n *Note) HasTitle() bool {
	return strings.TrimSpace(n.Title) != ""
}
