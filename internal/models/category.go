// ABOUTME: Category model for grouping notes.
// ABOUTME: Categories are a flat, read-only lookup set ordered by name.

package models

import "strings"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewCategory(id int64, name string) *Category {
	return &Category{
		ID:   id,
		Name: strings.TrimSpace(name),
	}
}

// Matches reports whether ref names this category, ignoring case and
// surrounding whitespace.
func (c *Category) Matches(ref string) bool {
	return strings.EqualFold(strings.TrimSpace(ref), c.Name)
}
