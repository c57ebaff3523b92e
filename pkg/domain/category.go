package domain

import (
	"errors"
	"strings"
)

// Category is one node of the classification forest materials are filed under.
type Category struct {
	Id          int
	Name        string
	Description string

	// ParentId points to the containing category. nil for roots.
	ParentId *int

	// Position orders siblings. Smaller comes first.
	Position int
}

func (c Category) Equal(o Category) bool {
	parentEq := (c.ParentId == nil && o.ParentId == nil) ||
		(c.ParentId != nil && o.ParentId != nil && *c.ParentId == *o.ParentId)

	return c.Id == o.Id &&
		c.Name == o.Name &&
		c.Description == o.Description &&
		parentEq &&
		c.Position == o.Position
}

// CategoryNode is a Category with its (transitively) contained categories.
type CategoryNode struct {
	Category
	Children []CategoryNode
}

// CategoryParam is what a caller specifies to register a category.
type CategoryParam struct {
	Name        string
	Description string
	ParentId    *int
	Position    int
}

var (
	ErrInvalidCategory = errors.New("invalid category")

	// ErrCategoryNameTaken: a sibling with the same name already exists.
	ErrCategoryNameTaken = errors.New("category name is taken in the parent")

	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNotEmpty: deletion refused since children exist.
	ErrCategoryNotEmpty = errors.New("category has children")

	// ErrCategoryCycle: moving a category under its own descendant.
	ErrCategoryCycle = errors.New("category move would create a cycle")
)

// Validate normalizes the param or reports ErrInvalidCategory.
func (p CategoryParam) Validate() (CategoryParam, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return p, ErrInvalidCategory
	}
	return p, nil
}
