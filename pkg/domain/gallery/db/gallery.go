package db

import (
	"context"

	types "github.com/matkb/matkb/pkg/domain"
)

type GalleryInterface interface {
	// Register a new reference entry.
	//
	// Args
	//
	// - context.Context
	//
	// - ReferenceEntryParam: specification of the entry to be created
	//
	// Return
	//
	// - int: id of the registered entry
	//
	// - error: ErrInvalidReferenceEntry when the param does not validate.
	Register(context.Context, types.ReferenceEntryParam) (int, error)

	// Update replaces an existing entry.
	//
	// Return: error: ErrReferenceEntryNotFound, ErrInvalidReferenceEntry.
	Update(ctx context.Context, id int, param types.ReferenceEntryParam) error

	// Find retrieves reference entries.
	//
	// When property is not empty, only entries of that property are
	// returned. Entries are ordered by (property, position, value).
	Find(ctx context.Context, property string) ([]types.ReferenceEntry, error)

	// Delete removes an entry.
	//
	// Return: error: ErrReferenceEntryNotFound.
	Delete(ctx context.Context, id int) error
}
