package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/matkb/matkb/pkg/conn/db/postgres/pool"
	kcategory "github.com/matkb/matkb/pkg/domain/category/db"
	kpgcategory "github.com/matkb/matkb/pkg/domain/category/db/postgres"
	kfeedback "github.com/matkb/matkb/pkg/domain/feedback/db"
	kpgfeedback "github.com/matkb/matkb/pkg/domain/feedback/db/postgres"
	kfield "github.com/matkb/matkb/pkg/domain/field/db"
	kpgfield "github.com/matkb/matkb/pkg/domain/field/db/postgres"
	kgallery "github.com/matkb/matkb/pkg/domain/gallery/db"
	kpggallery "github.com/matkb/matkb/pkg/domain/gallery/db/postgres"
	dbInterface "github.com/matkb/matkb/pkg/domain/matkb/db"
	ktraining "github.com/matkb/matkb/pkg/domain/training/db"
	kpgtraining "github.com/matkb/matkb/pkg/domain/training/db/postgres"
	xe "github.com/matkb/matkb/pkg/errors"
)

type matkbDBPostgres struct {
	pool     *pgxpool.Pool
	category kcategory.CategoryInterface
	field    kfield.FieldInterface
	gallery  kgallery.GalleryInterface
	feedback kfeedback.FeedbackInterface
	training ktraining.TrainingInterface
}

var _ dbInterface.MatkbDatabase = &matkbDBPostgres{}

func New(ctx context.Context, url string) (dbInterface.MatkbDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	p := kpool.Wrap(pool)
	return &matkbDBPostgres{
		pool:     pool,
		category: kpgcategory.New(p),
		field:    kpgfield.New(p),
		gallery:  kpggallery.New(p),
		feedback: kpgfeedback.New(p),
		training: kpgtraining.New(p),
	}, nil
}

func (m *matkbDBPostgres) Category() kcategory.CategoryInterface {
	return m.category
}

func (m *matkbDBPostgres) Field() kfield.FieldInterface {
	return m.field
}

func (m *matkbDBPostgres) Gallery() kgallery.GalleryInterface {
	return m.gallery
}

func (m *matkbDBPostgres) Feedback() kfeedback.FeedbackInterface {
	return m.feedback
}

func (m *matkbDBPostgres) Training() ktraining.TrainingInterface {
	return m.training
}

func (m *matkbDBPostgres) Close(context.Context) error {
	m.pool.Close()
	return nil
}
