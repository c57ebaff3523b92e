package feedback

import (
	apifeedback "github.com/matkb/matkb/pkg/api/types/feedback"
	types "github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/utils/rfctime"
	"github.com/matkb/matkb/pkg/utils/slices"
)

func ComposeDetail(f types.Feedback) apifeedback.Detail {
	return apifeedback.Detail{
		Id:             f.Id,
		MaterialId:     f.MaterialId,
		PredictedLabel: f.PredictedLabel,
		Confidence:     f.Confidence,
		Payload:        f.Payload,
		EnqueuedAt:     rfctime.New(f.EnqueuedAt),
	}
}

func ComposeDetails(fs []types.Feedback) []apifeedback.Detail {
	if fs == nil {
		return []apifeedback.Detail{}
	}
	return slices.Map(fs, ComposeDetail)
}
