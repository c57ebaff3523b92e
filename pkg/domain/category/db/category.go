package db

import (
	"context"

	types "github.com/matkb/matkb/pkg/domain"
)

type CategoryInterface interface {
	// Register a new category.
	//
	// Args
	//
	// - context.Context
	//
	// - CategoryParam: specification of the category to be created
	//
	// Return
	//
	// - int: id of the registered category
	//
	// - error: ErrCategoryNameTaken when a sibling holds the name,
	// ErrCategoryNotFound when the parent does not exist.
	Register(context.Context, types.CategoryParam) (int, error)

	// Rename a category in place.
	//
	// Return: error: ErrCategoryNotFound, ErrCategoryNameTaken.
	Rename(ctx context.Context, id int, name string) error

	// Move reparents a category (nil = to root).
	//
	// Moving a category under its own subtree is refused with
	// ErrCategoryCycle.
	Move(ctx context.Context, id int, parentId *int) error

	// Find retrieves the whole classification forest.
	//
	// Roots and siblings are ordered by (position, name).
	Find(context.Context) ([]types.CategoryNode, error)

	// Delete removes an empty category.
	//
	// Return: error: ErrCategoryNotFound, or ErrCategoryNotEmpty when
	// children exist. Deletion does not cascade.
	Delete(ctx context.Context, id int) error
}
