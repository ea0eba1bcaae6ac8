// internal/domain/category.go
package domain

import (
	"fmt"
	"strings"
)

// CategoryKind is the optional income/outcome tag on a category.
type CategoryKind string

const (
	KindIncome  CategoryKind = "income"
	KindOutcome CategoryKind = "outcome"
)

// ParseCategoryKind converts raw caller input into a CategoryKind.
func ParseCategoryKind(kind string) (CategoryKind, error) {
	k := CategoryKind(strings.ToLower(strings.TrimSpace(kind)))
	switch k {
	case KindIncome, KindOutcome:
		return k, nil
	}
	return "", fmt.Errorf("unsupported category kind %q", kind)
}

// Category labels transactions. Names are unique with exact, case-sensitive
// matching, enforced at insert time. Description distinguishes "empty" from
// "absent", hence the pointer.
type Category struct {
	Entity

	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Kind        *CategoryKind `json:"kind,omitempty"`
}

// NewCategory creates a new Category instance with a fresh identity.
// description and kind may be nil.
func NewCategory(name string, description *string, kind *CategoryKind) Category {
	return Category{
		Entity:      NewEntity(),
		Name:        name,
		Description: description,
		Kind:        kind,
	}
}
