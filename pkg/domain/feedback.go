package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Feedback is one active-learning feedback item: a prediction the model
// was uncertain about, queued until an expert confirms or corrects it.
type Feedback struct {
	Id             int
	MaterialId     string
	PredictedLabel string

	// Confidence of the prediction, in [0, 1].
	Confidence float64

	// Payload carries the model's raw output, opaque to this backend.
	Payload json.RawMessage

	EnqueuedAt time.Time
}

// FeedbackParam is what the inference side specifies to enqueue feedback.
type FeedbackParam struct {
	MaterialId     string
	PredictedLabel string
	Confidence     float64
	Payload        json.RawMessage
}

var ErrInvalidFeedback = errors.New("invalid feedback")

// Validate checks the param or reports ErrInvalidFeedback.
func (p FeedbackParam) Validate() (FeedbackParam, error) {
	if p.MaterialId == "" {
		return p, fmt.Errorf("%w: material id is required", ErrInvalidFeedback)
	}
	if p.Confidence < 0 || 1 < p.Confidence {
		return p, fmt.Errorf("%w: confidence out of range: %f", ErrInvalidFeedback, p.Confidence)
	}
	if len(p.Payload) == 0 {
		p.Payload = json.RawMessage("{}")
	}
	return p, nil
}
