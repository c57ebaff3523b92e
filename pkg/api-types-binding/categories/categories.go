package categories

import (
	apicategories "github.com/matkb/matkb/pkg/api/types/categories"
	types "github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/utils/slices"
)

func ComposeNode(n types.CategoryNode) apicategories.Node {
	return apicategories.Node{
		Id:          n.Id,
		Name:        n.Name,
		Description: n.Description,
		ParentId:    n.ParentId,
		Position:    n.Position,
		Children:    slices.Map(n.Children, ComposeNode),
	}
}

func ComposeForest(forest []types.CategoryNode) []apicategories.Node {
	if forest == nil {
		return []apicategories.Node{}
	}
	return slices.Map(forest, ComposeNode)
}
