package postgres

import (
	"context"

	kpool "github.com/matkb/matkb/pkg/conn/db/postgres/pool"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/gallery/db"
	xe "github.com/matkb/matkb/pkg/errors"
)

type pgGallery struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.GalleryInterface {
	return &pgGallery{pool: pool}
}

func (g *pgGallery) Register(ctx context.Context, param types.ReferenceEntryParam) (int, error) {
	param, err := param.Validate()
	if err != nil {
		return 0, err
	}

	var id int
	if err := g.pool.QueryRow(
		ctx,
		`
		insert into "reference_entry"
		    ("property", "value_label", "image_url", "caption", "position")
		values ($1, $2, $3, $4, $5)
		returning "id";
		`,
		param.Property, param.ValueLabel, param.ImageURL, param.Caption, param.Position,
	).Scan(&id); err != nil {
		return 0, xe.Wrap(err)
	}
	return id, nil
}

func (g *pgGallery) Update(ctx context.Context, id int, param types.ReferenceEntryParam) error {
	param, err := param.Validate()
	if err != nil {
		return err
	}

	cmd, err := g.pool.Exec(
		ctx,
		`
		update "reference_entry"
		set "property" = $2, "value_label" = $3, "image_url" = $4,
		    "caption" = $5, "position" = $6
		where "id" = $1;
		`,
		id, param.Property, param.ValueLabel, param.ImageURL, param.Caption, param.Position,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return xe.Wrap(types.ErrReferenceEntryNotFound)
	}
	return nil
}

func (g *pgGallery) Find(ctx context.Context, property string) ([]types.ReferenceEntry, error) {
	rows, err := g.pool.Query(
		ctx,
		`
		select "id", "property", "value_label", "image_url", "caption", "position"
		from "reference_entry"
		where ($1 = '') or ("property" = $1)
		order by "property", "position", "value_label";
		`,
		property,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	entries := []types.ReferenceEntry{}
	for rows.Next() {
		var ent types.ReferenceEntry
		if err := rows.Scan(
			&ent.Id, &ent.Property, &ent.ValueLabel,
			&ent.ImageURL, &ent.Caption, &ent.Position,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		entries = append(entries, ent)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return entries, nil
}

func (g *pgGallery) Delete(ctx context.Context, id int) error {
	cmd, err := g.pool.Exec(
		ctx, `delete from "reference_entry" where "id" = $1;`, id,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return xe.Wrap(types.ErrReferenceEntryNotFound)
	}
	return nil
}
