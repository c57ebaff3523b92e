package postgres

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	kpool "github.com/matkb/matkb/pkg/conn/db/postgres/pool"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/category/db"
	xe "github.com/matkb/matkb/pkg/errors"
)

type pgCategory struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.CategoryInterface {
	return &pgCategory{pool: pool}
}

// translate Postgres constraint violations into domain errors.
func asDomainError(err error) error {
	pgErr := &pgconn.PgError{}
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return types.ErrCategoryNameTaken
	case pgerrcode.ForeignKeyViolation:
		return types.ErrCategoryNotFound
	}
	return err
}

func (c *pgCategory) Register(ctx context.Context, param types.CategoryParam) (int, error) {
	param, err := param.Validate()
	if err != nil {
		return 0, err
	}

	var id int
	err = c.pool.QueryRow(
		ctx,
		`
		insert into "category" ("name", "description", "parent_id", "position")
		values ($1, $2, $3, $4)
		returning "id";
		`,
		param.Name, param.Description, param.ParentId, param.Position,
	).Scan(&id)
	if err != nil {
		return 0, xe.Wrap(asDomainError(err))
	}

	return id, nil
}

func (c *pgCategory) Rename(ctx context.Context, id int, name string) error {
	param, err := types.CategoryParam{Name: name}.Validate()
	if err != nil {
		return err
	}

	tag, err := c.pool.Exec(
		ctx,
		`update "category" set "name" = $1 where "id" = $2;`,
		param.Name, id,
	)
	if err != nil {
		return xe.Wrap(asDomainError(err))
	}
	if tag.RowsAffected() == 0 {
		return types.ErrCategoryNotFound
	}
	return nil
}

func (c *pgCategory) Move(ctx context.Context, id int, parentId *int) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	if parentId != nil {
		if *parentId == id {
			return types.ErrCategoryCycle
		}

		// the new parent must not be inside the moved subtree.
		var cycle bool
		err := tx.QueryRow(
			ctx,
			`
			with recursive "subtree" as (
				select "id" from "category" where "id" = $1
				union all
				select "c"."id"
				from "category" as "c"
				inner join "subtree" as "s" on "c"."parent_id" = "s"."id"
			)
			select exists (select 1 from "subtree" where "id" = $2);
			`,
			id, *parentId,
		).Scan(&cycle)
		if err != nil {
			return xe.Wrap(err)
		}
		if cycle {
			return types.ErrCategoryCycle
		}
	}

	tag, err := tx.Exec(
		ctx,
		`update "category" set "parent_id" = $1 where "id" = $2;`,
		parentId, id,
	)
	if err != nil {
		return xe.Wrap(asDomainError(err))
	}
	if tag.RowsAffected() == 0 {
		return types.ErrCategoryNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (c *pgCategory) Find(ctx context.Context) ([]types.CategoryNode, error) {
	rows, err := c.pool.Query(
		ctx,
		`
		select "id", "name", "description", "parent_id", "position"
		from "category";
		`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	flat := []types.Category{}
	for rows.Next() {
		var cat types.Category
		if err := rows.Scan(
			&cat.Id, &cat.Name, &cat.Description, &cat.ParentId, &cat.Position,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		flat = append(flat, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return buildForest(flat), nil
}

// buildForest assembles flat rows into ordered trees.
func buildForest(flat []types.Category) []types.CategoryNode {
	children := map[int][]types.Category{}
	roots := []types.Category{}
	for _, cat := range flat {
		if cat.ParentId == nil {
			roots = append(roots, cat)
			continue
		}
		children[*cat.ParentId] = append(children[*cat.ParentId], cat)
	}

	order := func(sli []types.Category) {
		sort.SliceStable(sli, func(i, j int) bool {
			if sli[i].Position != sli[j].Position {
				return sli[i].Position < sli[j].Position
			}
			return sli[i].Name < sli[j].Name
		})
	}

	var grow func(cat types.Category) types.CategoryNode
	grow = func(cat types.Category) types.CategoryNode {
		node := types.CategoryNode{Category: cat, Children: []types.CategoryNode{}}
		kids := children[cat.Id]
		order(kids)
		for _, kid := range kids {
			node.Children = append(node.Children, grow(kid))
		}
		return node
	}

	order(roots)
	forest := []types.CategoryNode{}
	for _, root := range roots {
		forest = append(forest, grow(root))
	}
	return forest
}

func (c *pgCategory) Delete(ctx context.Context, id int) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var hasChildren bool
	if err := tx.QueryRow(
		ctx,
		`select exists (select 1 from "category" where "parent_id" = $1);`,
		id,
	).Scan(&hasChildren); err != nil {
		return xe.Wrap(err)
	}
	if hasChildren {
		return types.ErrCategoryNotEmpty
	}

	tag, err := tx.Exec(ctx, `delete from "category" where "id" = $1;`, id)
	if err != nil {
		return xe.Wrap(asDomainError(err))
	}
	if tag.RowsAffected() == 0 {
		return types.ErrCategoryNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
