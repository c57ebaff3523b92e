package postgres

import (
	"context"

	kpool "github.com/matkb/matkb/pkg/conn/db/postgres/pool"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/feedback/db"
	xe "github.com/matkb/matkb/pkg/errors"
)

type pgFeedback struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.FeedbackInterface {
	return &pgFeedback{pool: pool}
}

func (f *pgFeedback) Enqueue(ctx context.Context, param types.FeedbackParam) (int, error) {
	param, err := param.Validate()
	if err != nil {
		return 0, err
	}

	var id int
	if err := f.pool.QueryRow(
		ctx,
		`
		insert into "feedback"
		    ("material_id", "predicted_label", "confidence", "payload", "enqueued_at")
		values ($1, $2, $3, $4, now())
		returning "id";
		`,
		param.MaterialId, param.PredictedLabel, param.Confidence, param.Payload,
	).Scan(&id); err != nil {
		return 0, xe.Wrap(err)
	}
	return id, nil
}

func (f *pgFeedback) Find(ctx context.Context, limit int) ([]types.Feedback, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := f.pool.Query(
		ctx,
		`
		select "id", "material_id", "predicted_label", "confidence", "payload", "enqueued_at"
		from "feedback"
		order by "enqueued_at", "confidence", "id"
		limit $1;
		`,
		limit,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	items := []types.Feedback{}
	for rows.Next() {
		var fb types.Feedback
		if err := rows.Scan(
			&fb.Id, &fb.MaterialId, &fb.PredictedLabel,
			&fb.Confidence, &fb.Payload, &fb.EnqueuedAt,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		items = append(items, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return items, nil
}

func (f *pgFeedback) Count(ctx context.Context) (int, error) {
	var count int
	if err := f.pool.QueryRow(
		ctx, `select count(*) from "feedback";`,
	).Scan(&count); err != nil {
		return 0, xe.Wrap(err)
	}
	return count, nil
}

func (f *pgFeedback) Pop(ctx context.Context, callback func(types.Feedback) error) (bool, error) {
	tx, err := f.pool.Begin(ctx)
	if err != nil {
		return false, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(
		ctx,
		`
		with "picked" as (
			select "id" from "feedback"
			order by "enqueued_at", "confidence", "id"
			limit 1 for update skip locked
		)
		delete from "feedback"
		where "id" in (select "id" from "picked")
		returning "id", "material_id", "predicted_label", "confidence", "payload", "enqueued_at";
		`,
	)
	if err != nil {
		return false, xe.Wrap(err)
	}
	defer rows.Close()

	var fb types.Feedback
	pop := false
	for rows.Next() {
		if err := rows.Scan(
			&fb.Id, &fb.MaterialId, &fb.PredictedLabel,
			&fb.Confidence, &fb.Payload, &fb.EnqueuedAt,
		); err != nil {
			return false, xe.Wrap(err)
		}
		pop = true
	}
	if err := rows.Err(); err != nil {
		return false, xe.Wrap(err)
	}

	if pop && callback != nil {
		if err := callback(fb); err != nil {
			return false, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return false, xe.Wrap(err)
	}

	return pop, nil
}
