package db

import (
	"context"

	types "github.com/matkb/matkb/pkg/domain"
)

type FeedbackInterface interface {
	// Enqueue a feedback item for review.
	//
	// Args
	//
	// - context.Context
	//
	// - FeedbackParam: the prediction to be reviewed
	//
	// Return
	//
	// - int: id of the enqueued item
	//
	// - error: ErrInvalidFeedback when the param does not validate.
	Enqueue(context.Context, types.FeedbackParam) (int, error)

	// Find retrieves queued feedback, oldest first, lowest confidence
	// breaking ties.
	Find(ctx context.Context, limit int) ([]types.Feedback, error)

	// Count reports how many feedback items are queued.
	Count(ctx context.Context) (int, error)

	// Pop dequeues one feedback item and passes it to callback.
	//
	// The dequeue commits only when callback succeeds. Items locked by
	// concurrent reviewers are skipped.
	//
	// Return
	//
	// - bool: true when an item was popped
	//
	// - error: the callback's error, or a database error.
	Pop(ctx context.Context, callback func(types.Feedback) error) (bool, error)
}
