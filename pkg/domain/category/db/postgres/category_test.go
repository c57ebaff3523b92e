package postgres

import (
	"testing"

	"github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/utils/pointer"
)

func TestBuildForest(t *testing.T) {
	t.Run("it assembles flat rows into trees ordered by position then name", func(t *testing.T) {
		flat := []domain.Category{
			{Id: 1, Name: "metals", Position: 1},
			{Id: 2, Name: "alloys", ParentId: pointer.Ref(1), Position: 2},
			{Id: 3, Name: "steels", ParentId: pointer.Ref(1), Position: 1},
			{Id: 4, Name: "polymers", Position: 0},
			{Id: 5, Name: "thermoplastics", ParentId: pointer.Ref(4), Position: 0},
		}

		forest := buildForest(flat)

		if len(forest) != 2 {
			t.Fatalf("unexpected root count: %d", len(forest))
		}
		if forest[0].Name != "polymers" || forest[1].Name != "metals" {
			t.Errorf("unexpected root order: %s, %s", forest[0].Name, forest[1].Name)
		}
		metals := forest[1]
		if len(metals.Children) != 2 {
			t.Fatalf("unexpected children count under metals: %d", len(metals.Children))
		}
		if metals.Children[0].Name != "steels" || metals.Children[1].Name != "alloys" {
			t.Errorf(
				"unexpected child order: %s, %s",
				metals.Children[0].Name, metals.Children[1].Name,
			)
		}
		if len(forest[0].Children) != 1 || forest[0].Children[0].Name != "thermoplastics" {
			t.Errorf("unexpected polymers subtree: %+v", forest[0].Children)
		}
	})

	t.Run("it breaks position ties by name", func(t *testing.T) {
		flat := []domain.Category{
			{Id: 1, Name: "b", Position: 0},
			{Id: 2, Name: "a", Position: 0},
		}

		forest := buildForest(flat)

		if forest[0].Name != "a" || forest[1].Name != "b" {
			t.Errorf("unexpected order: %s, %s", forest[0].Name, forest[1].Name)
		}
	})

	t.Run("it skips rows whose parent is missing", func(t *testing.T) {
		flat := []domain.Category{
			{Id: 1, Name: "root", Position: 0},
			{Id: 2, Name: "orphan", ParentId: pointer.Ref(99), Position: 0},
		}

		forest := buildForest(flat)

		if len(forest) != 1 || forest[0].Name != "root" {
			t.Errorf("unexpected forest: %+v", forest)
		}
	})

	t.Run("it returns empty forest for no rows", func(t *testing.T) {
		if forest := buildForest(nil); len(forest) != 0 {
			t.Errorf("unexpected forest: %+v", forest)
		}
	})
}
