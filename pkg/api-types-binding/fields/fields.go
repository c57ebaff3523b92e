package fields

import (
	apifields "github.com/matkb/matkb/pkg/api/types/fields"
	types "github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/utils/slices"
)

func ComposeDetail(f types.FieldDefinition) apifields.Detail {
	return apifields.Detail{
		Id:       f.Id,
		Key:      f.Key,
		Label:    f.Label,
		Kind:     f.Kind.String(),
		Required: f.Required,
		Options:  f.Options,
		Position: f.Position,
	}
}

func ComposeDetails(fs []types.FieldDefinition) []apifields.Detail {
	if fs == nil {
		return []apifields.Detail{}
	}
	return slices.Map(fs, ComposeDetail)
}
