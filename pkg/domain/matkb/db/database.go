package db

import (
	"context"

	kcategory "github.com/matkb/matkb/pkg/domain/category/db"
	kfeedback "github.com/matkb/matkb/pkg/domain/feedback/db"
	kfield "github.com/matkb/matkb/pkg/domain/field/db"
	kgallery "github.com/matkb/matkb/pkg/domain/gallery/db"
	ktraining "github.com/matkb/matkb/pkg/domain/training/db"
)

// MatkbDatabase bundles the entity stores backed by one database.
type MatkbDatabase interface {
	Category() kcategory.CategoryInterface
	Field() kfield.FieldInterface
	Gallery() kgallery.GalleryInterface
	Feedback() kfeedback.FeedbackInterface
	Training() ktraining.TrainingInterface

	Close(ctx context.Context) error
}
