package feedback

import (
	"encoding/json"

	"github.com/matkb/matkb/pkg/utils/rfctime"
)

// Spec is the request body to enqueue a feedback item.
type Spec struct {
	MaterialId     string          `json:"materialId"`
	PredictedLabel string          `json:"predictedLabel,omitempty"`
	Confidence     float64         `json:"confidence"`
	Payload        json.RawMessage `json:"payload,omitempty"`
}

// Detail is one queued feedback item as served to the dashboard.
type Detail struct {
	Id             int             `json:"id"`
	MaterialId     string          `json:"materialId"`
	PredictedLabel string          `json:"predictedLabel,omitempty"`
	Confidence     float64         `json:"confidence"`
	Payload        json.RawMessage `json:"payload"`
	EnqueuedAt     rfctime.RFC3339 `json:"enqueuedAt"`
}

type Created struct {
	Id int `json:"id"`
}

// QueueLength is the response of counting queued items.
type QueueLength struct {
	Count int `json:"count"`
}

// PopResult is the response of dequeueing one item for review.
//
// Popped is false when the queue was empty; Item is null then.
type PopResult struct {
	Popped bool    `json:"popped"`
	Item   *Detail `json:"item,omitempty"`
}
