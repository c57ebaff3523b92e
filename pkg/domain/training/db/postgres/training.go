package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	kpool "github.com/matkb/matkb/pkg/conn/db/postgres/pool"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/training/db"
	xe "github.com/matkb/matkb/pkg/errors"
)

type pgTraining struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.TrainingInterface {
	return &pgTraining{pool: pool}
}

func (t *pgTraining) Register(ctx context.Context, param types.TrainingSessionParam) (int, error) {
	param, err := param.Validate()
	if err != nil {
		return 0, err
	}

	var id int
	if err := t.pool.QueryRow(
		ctx,
		`
		insert into "training_session"
		    ("model_name", "image", "server_url", "status", "created_at", "updated_at")
		values ($1, $2, $3, $4, now(), now())
		returning "id";
		`,
		param.ModelName, param.Image, param.ServerURL, string(types.SessionWaiting),
	).Scan(&id); err != nil {
		return 0, xe.Wrap(err)
	}
	return id, nil
}

func (t *pgTraining) Get(ctx context.Context, id int) (types.TrainingSession, error) {
	ses, err := scanSession(t.pool.QueryRow(
		ctx,
		`
		select "id", "model_name", "image", "server_url", "status", "created_at", "updated_at"
		from "training_session" where "id" = $1;
		`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.TrainingSession{}, xe.Wrap(types.ErrSessionNotFound)
		}
		return types.TrainingSession{}, xe.Wrap(err)
	}
	return ses, nil
}

func (t *pgTraining) Find(ctx context.Context) ([]types.TrainingSession, error) {
	rows, err := t.pool.Query(
		ctx,
		`
		select "id", "model_name", "image", "server_url", "status", "created_at", "updated_at"
		from "training_session"
		order by "created_at" desc, "id" desc;
		`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	sessions := []types.TrainingSession{}
	for rows.Next() {
		ses, err := scanSession(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		sessions = append(sessions, ses)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return sessions, nil
}

func (t *pgTraining) UpdateStatus(ctx context.Context, id int, status types.SessionStatus) error {
	if _, err := types.AsSessionStatus(string(status)); err != nil {
		return err
	}

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var current string
	if err := tx.QueryRow(
		ctx,
		`select "status" from "training_session" where "id" = $1 for update;`,
		id,
	).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return xe.Wrap(types.ErrSessionNotFound)
		}
		return xe.Wrap(err)
	}

	cur, err := types.AsSessionStatus(current)
	if err != nil {
		return xe.Wrap(err)
	}
	if cur.Terminal() && cur != status {
		return xe.Wrap(fmt.Errorf(
			"%w: session %d is %s already", types.ErrInvalidSession, id, cur,
		))
	}

	if _, err := tx.Exec(
		ctx,
		`update "training_session" set "status" = $2, "updated_at" = now() where "id" = $1;`,
		id, string(status),
	); err != nil {
		return xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (t *pgTraining) Delete(ctx context.Context, id int) error {
	cmd, err := t.pool.Exec(
		ctx, `delete from "training_session" where "id" = $1;`, id,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return xe.Wrap(types.ErrSessionNotFound)
	}
	return nil
}

func scanSession(row pgx.Row) (types.TrainingSession, error) {
	var (
		ses    types.TrainingSession
		status string
	)
	if err := row.Scan(
		&ses.Id, &ses.ModelName, &ses.Image, &ses.ServerURL,
		&status, &ses.CreatedAt, &ses.UpdatedAt,
	); err != nil {
		return types.TrainingSession{}, err
	}

	st, err := types.AsSessionStatus(status)
	if err != nil {
		return types.TrainingSession{}, err
	}
	ses.Status = st
	return ses, nil
}
