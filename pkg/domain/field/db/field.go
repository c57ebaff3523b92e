package db

import (
	"context"

	types "github.com/matkb/matkb/pkg/domain"
)

type FieldInterface interface {
	// Register a new metadata field definition.
	//
	// Args
	//
	// - context.Context
	//
	// - FieldParam: specification of the field to be created
	//
	// Return
	//
	// - int: id of the registered field
	//
	// - error: ErrFieldKeyTaken when the key is in use,
	// ErrInvalidField when the param does not validate.
	Register(context.Context, types.FieldParam) (int, error)

	// Update replaces the definition of an existing field.
	//
	// The key is immutable. Passing a param with a different key is
	// refused with ErrInvalidField.
	//
	// Return: error: ErrFieldNotFound, ErrInvalidField.
	Update(ctx context.Context, id int, param types.FieldParam) error

	// Find retrieves all field definitions ordered by (position, key).
	Find(context.Context) ([]types.FieldDefinition, error)

	// Reorder rewrites positions so the fields appear in the order of ids.
	//
	// ids must name every field exactly once.
	//
	// Return: error: ErrFieldNotFound when an id is unknown,
	// ErrInvalidField when ids do not cover the whole set.
	Reorder(ctx context.Context, ids []int) error

	// Delete removes a field definition.
	//
	// Return: error: ErrFieldNotFound.
	Delete(ctx context.Context, id int) error
}
