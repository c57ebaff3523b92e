package gallery

import (
	apigallery "github.com/matkb/matkb/pkg/api/types/gallery"
	types "github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/utils/slices"
)

func ComposeDetail(r types.ReferenceEntry) apigallery.Detail {
	return apigallery.Detail{
		Id:         r.Id,
		Property:   r.Property,
		ValueLabel: r.ValueLabel,
		ImageURL:   r.ImageURL,
		Caption:    r.Caption,
		Position:   r.Position,
	}
}

func ComposeDetails(rs []types.ReferenceEntry) []apigallery.Detail {
	if rs == nil {
		return []apigallery.Detail{}
	}
	return slices.Map(rs, ComposeDetail)
}
