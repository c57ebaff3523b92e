package training

import (
	apitraining "github.com/matkb/matkb/pkg/api/types/training"
	types "github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/domain/training/telemetry"
	"github.com/matkb/matkb/pkg/utils/rfctime"
	"github.com/matkb/matkb/pkg/utils/slices"
)

func ComposeDetail(s types.TrainingSession) apitraining.Detail {
	return apitraining.Detail{
		Id:        s.Id,
		ModelName: s.ModelName,
		Image:     s.Image,
		ServerURL: s.ServerURL,
		Status:    s.Status.String(),
		CreatedAt: rfctime.New(s.CreatedAt),
		UpdatedAt: rfctime.New(s.UpdatedAt),
	}
}

func ComposeDetails(ss []types.TrainingSession) []apitraining.Detail {
	if ss == nil {
		return []apitraining.Detail{}
	}
	return slices.Map(ss, ComposeDetail)
}

func composeSnapshot(s telemetry.ProgressSnapshot) apitraining.Snapshot {
	return apitraining.Snapshot{
		Epoch:        s.Epoch,
		TotalEpochs:  s.TotalEpochs,
		Step:         s.Step,
		TotalSteps:   s.TotalSteps,
		Loss:         s.Loss,
		Accuracy:     s.Accuracy,
		ValLoss:      s.ValLoss,
		ValAccuracy:  s.ValAccuracy,
		LearningRate: s.LearningRate,
		TimeElapsed:  s.TimeElapsed,
		TimeRemain:   s.TimeRemaining,
		ModelName:    s.ModelName,
		Status:       string(s.Status),
		Metrics:      s.Metrics,
		Timestamp:    s.Timestamp,
	}
}

func composeEpochRecord(r telemetry.EpochRecord) apitraining.EpochRecord {
	return apitraining.EpochRecord{
		Epoch:       r.Epoch,
		Loss:        r.Loss,
		Accuracy:    r.Accuracy,
		ValLoss:     r.ValLoss,
		ValAccuracy: r.ValAccuracy,
	}
}

// ComposeTelemetry snapshots the live client state into one payload.
func ComposeTelemetry(sessionId int, cli *telemetry.Client) apitraining.Telemetry {
	payload := apitraining.Telemetry{
		SessionId:       sessionId,
		ConnectionState: cli.State().String(),
		Error:           cli.Err(),
		History:         []apitraining.EpochRecord{},
		Metrics:         map[string][]float64{},
		ControlsEnabled: cli.ControlsEnabled(),
	}

	if latest := cli.Latest(); latest != nil {
		snap := composeSnapshot(*latest)
		payload.Latest = &snap
	}
	if history := cli.History(); history != nil {
		payload.History = slices.Map(history, composeEpochRecord)
	}
	if metrics := cli.Metrics(); metrics != nil {
		payload.Metrics = metrics
	}
	return payload
}
