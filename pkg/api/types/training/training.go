package training

import (
	"github.com/matkb/matkb/pkg/utils/rfctime"
)

// Spec is the request body to register a training session.
type Spec struct {
	ModelName string `json:"modelName"`
	Image     string `json:"image"`
	ServerURL string `json:"serverUrl"`
}

// Detail is one registered session as served to the dashboard.
type Detail struct {
	Id        int             `json:"id"`
	ModelName string          `json:"modelName"`
	Image     string          `json:"image"`
	ServerURL string          `json:"serverUrl"`
	Status    string          `json:"status"`
	CreatedAt rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt rfctime.RFC3339 `json:"updatedAt"`
}

type Created struct {
	Id int `json:"id"`
}

// Snapshot mirrors the trainer's progress message.
type Snapshot struct {
	Epoch        int                  `json:"epoch"`
	TotalEpochs  int                  `json:"totalEpochs"`
	Step         int                  `json:"step"`
	TotalSteps   int                  `json:"totalSteps"`
	Loss         float64              `json:"loss"`
	Accuracy     float64              `json:"accuracy"`
	ValLoss      *float64             `json:"valLoss,omitempty"`
	ValAccuracy  *float64             `json:"valAccuracy,omitempty"`
	LearningRate float64              `json:"learningRate"`
	TimeElapsed  float64              `json:"timeElapsed"`
	TimeRemain   float64              `json:"timeRemaining"`
	ModelName    string               `json:"modelName"`
	Status       string               `json:"status"`
	Metrics      map[string][]float64 `json:"metrics,omitempty"`
	Timestamp    int64                `json:"timestamp"`
}

// EpochRecord is one completed epoch of the telemetry history.
type EpochRecord struct {
	Epoch       int      `json:"epoch"`
	Loss        float64  `json:"loss"`
	Accuracy    float64  `json:"accuracy"`
	ValLoss     *float64 `json:"valLoss,omitempty"`
	ValAccuracy *float64 `json:"valAccuracy,omitempty"`
}

// Telemetry is the live view of one watched session.
type Telemetry struct {
	SessionId       int                  `json:"sessionId"`
	ConnectionState string               `json:"connectionState"`
	Error           string               `json:"error,omitempty"`
	Latest          *Snapshot            `json:"latest,omitempty"`
	History         []EpochRecord        `json:"history"`
	Metrics         map[string][]float64 `json:"metrics"`
	ControlsEnabled bool                 `json:"controlsEnabled"`
}

// Command is the request body to control a watched trainer.
type Command struct {
	Command string `json:"command"`
}
