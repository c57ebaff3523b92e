package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	kpool "github.com/matkb/matkb/pkg/conn/db/postgres/pool"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/field/db"
	xe "github.com/matkb/matkb/pkg/errors"
)

type pgField struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.FieldInterface {
	return &pgField{pool: pool}
}

func asDomainError(err error) error {
	pgErr := &pgconn.PgError{}
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code == pgerrcode.UniqueViolation {
		return types.ErrFieldKeyTaken
	}
	return err
}

func (f *pgField) Register(ctx context.Context, param types.FieldParam) (int, error) {
	param, err := param.Validate()
	if err != nil {
		return 0, err
	}

	var id int
	if err := f.pool.QueryRow(
		ctx,
		`
		insert into "field" ("key", "label", "kind", "required", "options", "position")
		values ($1, $2, $3, $4, $5, $6)
		returning "id";
		`,
		param.Key, param.Label, string(param.Kind),
		param.Required, param.Options, param.Position,
	).Scan(&id); err != nil {
		return 0, xe.Wrap(asDomainError(err))
	}
	return id, nil
}

func (f *pgField) Update(ctx context.Context, id int, param types.FieldParam) error {
	param, err := param.Validate()
	if err != nil {
		return err
	}

	tx, err := f.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var key string
	if err := tx.QueryRow(
		ctx,
		`select "key" from "field" where "id" = $1 for update;`,
		id,
	).Scan(&key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return xe.Wrap(types.ErrFieldNotFound)
		}
		return xe.Wrap(err)
	}
	if key != param.Key {
		return xe.Wrap(fmt.Errorf(
			"%w: key is immutable (%s)", types.ErrInvalidField, key,
		))
	}

	if _, err := tx.Exec(
		ctx,
		`
		update "field"
		set "label" = $2, "kind" = $3, "required" = $4,
		    "options" = $5, "position" = $6
		where "id" = $1;
		`,
		id, param.Label, string(param.Kind),
		param.Required, param.Options, param.Position,
	); err != nil {
		return xe.Wrap(asDomainError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (f *pgField) Find(ctx context.Context) ([]types.FieldDefinition, error) {
	rows, err := f.pool.Query(
		ctx,
		`
		select "id", "key", "label", "kind", "required", "options", "position"
		from "field"
		order by "position", "key";
		`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	fields := []types.FieldDefinition{}
	for rows.Next() {
		var (
			fd   types.FieldDefinition
			kind string
		)
		if err := rows.Scan(
			&fd.Id, &fd.Key, &fd.Label, &kind,
			&fd.Required, &fd.Options, &fd.Position,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		if fd.Kind, err = types.AsFieldKind(kind); err != nil {
			return nil, xe.Wrap(err)
		}
		fields = append(fields, fd)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return fields, nil
}

func (f *pgField) Reorder(ctx context.Context, ids []int) error {
	seen := map[int]bool{}
	for _, id := range ids {
		if seen[id] {
			return xe.Wrap(fmt.Errorf(
				"%w: duplicated id in order: %d", types.ErrInvalidField, id,
			))
		}
		seen[id] = true
	}

	tx, err := f.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var total int
	if err := tx.QueryRow(
		ctx, `select count(*) from "field";`,
	).Scan(&total); err != nil {
		return xe.Wrap(err)
	}
	if total != len(ids) {
		return xe.Wrap(fmt.Errorf(
			"%w: order names %d fields, %d exist", types.ErrInvalidField, len(ids), total,
		))
	}

	for pos, id := range ids {
		cmd, err := tx.Exec(
			ctx, `update "field" set "position" = $2 where "id" = $1;`,
			id, pos+1,
		)
		if err != nil {
			return xe.Wrap(err)
		}
		if cmd.RowsAffected() == 0 {
			return xe.Wrap(types.ErrFieldNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (f *pgField) Delete(ctx context.Context, id int) error {
	cmd, err := f.pool.Exec(
		ctx, `delete from "field" where "id" = $1;`, id,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return xe.Wrap(types.ErrFieldNotFound)
	}
	return nil
}
