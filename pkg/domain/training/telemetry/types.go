package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ConnectionState is the lifecycle state of one telemetry channel.
type ConnectionState string

const (
	Disconnected ConnectionState = "disconnected"
	Connecting   ConnectionState = "connecting"
	Connected    ConnectionState = "connected"
	Errored      ConnectionState = "errored"
)

func (s ConnectionState) String() string {
	return string(s)
}

// TrainerStatus is what the trainer reports about itself in a snapshot.
type TrainerStatus string

const (
	StatusTraining  TrainerStatus = "training"
	StatusPaused    TrainerStatus = "paused"
	StatusCompleted TrainerStatus = "completed"
	StatusErrored   TrainerStatus = "errored"
)

func asTrainerStatus(status string) (TrainerStatus, error) {
	switch status {
	case string(StatusTraining):
		return StatusTraining, nil
	case string(StatusPaused):
		return StatusPaused, nil
	case string(StatusCompleted):
		return StatusCompleted, nil
	case string(StatusErrored):
		return StatusErrored, nil
	default:
		return "", fmt.Errorf("unknown trainer status: %s", status)
	}
}

// ProgressSnapshot is one telemetry message from the trainer.
//
// Snapshots are immutable once received; the client only derives new
// aggregate state from them.
type ProgressSnapshot struct {
	Epoch       int `json:"epoch"`
	TotalEpochs int `json:"totalEpochs"`
	Step        int `json:"step"`
	TotalSteps  int `json:"totalSteps"`

	Loss        float64  `json:"loss"`
	Accuracy    float64  `json:"accuracy"`
	ValLoss     *float64 `json:"valLoss,omitempty"`
	ValAccuracy *float64 `json:"valAccuracy,omitempty"`

	LearningRate float64 `json:"learningRate"`

	// TimeElapsed/TimeRemaining are seconds. TimeRemaining may be
	// negative when the trainer is overdue; it is passed through as is,
	// display layers decide what "overdue" looks like.
	TimeElapsed   float64 `json:"timeElapsed"`
	TimeRemaining float64 `json:"timeRemaining"`

	ModelName string        `json:"modelName"`
	Status    TrainerStatus `json:"status"`

	// Metrics maps metric name to its rolling history. The trainer sends
	// the full window each time, so a received map replaces the prior one.
	Metrics map[string][]float64 `json:"metrics,omitempty"`

	// Timestamp is the trainer's clock, milliseconds since the epoch.
	Timestamp int64 `json:"timestamp"`
}

func (s ProgressSnapshot) Equal(o ProgressSnapshot) bool {
	floatPtrEq := func(a, b *float64) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return *a == *b
	}
	metricsEq := len(s.Metrics) == len(o.Metrics)
	if metricsEq {
		for k, sv := range s.Metrics {
			ov, ok := o.Metrics[k]
			if !ok || len(sv) != len(ov) {
				metricsEq = false
				break
			}
			for nth := range sv {
				if sv[nth] != ov[nth] {
					metricsEq = false
					break
				}
			}
		}
	}

	return s.Epoch == o.Epoch &&
		s.TotalEpochs == o.TotalEpochs &&
		s.Step == o.Step &&
		s.TotalSteps == o.TotalSteps &&
		s.Loss == o.Loss &&
		s.Accuracy == o.Accuracy &&
		floatPtrEq(s.ValLoss, o.ValLoss) &&
		floatPtrEq(s.ValAccuracy, o.ValAccuracy) &&
		s.LearningRate == o.LearningRate &&
		s.TimeElapsed == o.TimeElapsed &&
		s.TimeRemaining == o.TimeRemaining &&
		s.ModelName == o.ModelName &&
		s.Status == o.Status &&
		metricsEq &&
		s.Timestamp == o.Timestamp
}

var errMalformedSnapshot = errors.New("malformed snapshot")

// parseSnapshot decodes and validates one inbound message.
//
// A message failing here is dropped by the client without touching any
// derived state.
func parseSnapshot(raw []byte) (ProgressSnapshot, error) {
	var s ProgressSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%w: %s", errMalformedSnapshot, err)
	}

	if s.Epoch < 0 || s.TotalEpochs <= 0 {
		return s, fmt.Errorf("%w: epoch %d of %d", errMalformedSnapshot, s.Epoch, s.TotalEpochs)
	}
	if s.Step < 0 || s.TotalSteps <= 0 {
		return s, fmt.Errorf("%w: step %d of %d", errMalformedSnapshot, s.Step, s.TotalSteps)
	}
	if s.Accuracy < 0 || 1 < s.Accuracy {
		return s, fmt.Errorf("%w: accuracy %f", errMalformedSnapshot, s.Accuracy)
	}
	if s.ValAccuracy != nil && (*s.ValAccuracy < 0 || 1 < *s.ValAccuracy) {
		return s, fmt.Errorf("%w: valAccuracy %f", errMalformedSnapshot, *s.ValAccuracy)
	}
	if s.LearningRate <= 0 {
		return s, fmt.Errorf("%w: learningRate %f", errMalformedSnapshot, s.LearningRate)
	}
	if s.TimeElapsed < 0 {
		return s, fmt.Errorf("%w: timeElapsed %f", errMalformedSnapshot, s.TimeElapsed)
	}
	if _, err := asTrainerStatus(string(s.Status)); err != nil {
		return s, fmt.Errorf("%w: %s", errMalformedSnapshot, err)
	}

	return s, nil
}

// EpochRecord is the per-completed-epoch row of the history.
type EpochRecord struct {
	Epoch       int      `json:"epoch"`
	Loss        float64  `json:"loss"`
	Accuracy    float64  `json:"accuracy"`
	ValLoss     *float64 `json:"valLoss,omitempty"`
	ValAccuracy *float64 `json:"valAccuracy,omitempty"`
}

func epochRecordOf(s ProgressSnapshot) EpochRecord {
	return EpochRecord{
		Epoch:       s.Epoch,
		Loss:        s.Loss,
		Accuracy:    s.Accuracy,
		ValLoss:     s.ValLoss,
		ValAccuracy: s.ValAccuracy,
	}
}

// Command is a control instruction for the trainer.
type Command string

const (
	CommandPause  Command = "pause"
	CommandResume Command = "resume"
	CommandStop   Command = "stop"
)

// message types on the outbound channel
const (
	messageTypeCommand          = "command"
	messageTypeGetStatus        = "getStatus"
	messageTypeClientDisconnect = "clientDisconnect"
)

// CommandMessage is the outbound wire frame.
//
// Type is "command" for trainer controls, or one of the bare
// notifications "getStatus" / "clientDisconnect" (Command empty then).
type CommandMessage struct {
	Type      string  `json:"type"`
	Command   Command `json:"command,omitempty"`
	Timestamp int64   `json:"timestamp"`
}
