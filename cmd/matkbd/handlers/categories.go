package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	bindcategories "github.com/matkb/matkb/pkg/api-types-binding/categories"
	binderr "github.com/matkb/matkb/pkg/api-types-binding/errors"
	apicategories "github.com/matkb/matkb/pkg/api/types/categories"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/category/db"
)

func requireJson(c echo.Context) *echo.HTTPError {
	ctyp := strings.ToLower(c.Request().Header.Get("content-type"))
	if ctyp != "application/json" && !strings.HasPrefix(ctyp, "application/json;") {
		return binderr.BadRequest(
			"unexpected content type. it should be application/json", nil,
		)
	}
	return nil
}

func pathParamId(c echo.Context, name string) (int, *echo.HTTPError) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, binderr.BadRequest("id should be an integer", err)
	}
	return id, nil
}

func GetCategoriesHandler(dbcategory kdb.CategoryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		forest, err := dbcategory.Find(c.Request().Context())
		if err != nil {
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindcategories.ComposeForest(forest))
	}
}

func CategoryRegisterHandler(dbcategory kdb.CategoryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}

		spec := new(apicategories.Spec)
		if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		id, err := dbcategory.Register(c.Request().Context(), types.CategoryParam{
			Name:        spec.Name,
			Description: spec.Description,
			ParentId:    spec.ParentId,
			Position:    spec.Position,
		})
		if err != nil {
			if errors.Is(err, types.ErrInvalidCategory) {
				return binderr.BadRequest(err.Error(), err)
			}
			if errors.Is(err, types.ErrCategoryNameTaken) {
				return binderr.Conflict("category name is taken", binderr.WithError(err))
			}
			if errors.Is(err, types.ErrCategoryNotFound) {
				return binderr.BadRequest("parent category does not exist", err)
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, apicategories.Created{Id: id})
	}
}

func CategoryRenameHandler(dbcategory kdb.CategoryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		body := new(apicategories.Rename)
		if err := json.NewDecoder(c.Request().Body).Decode(body); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		if err := dbcategory.Rename(c.Request().Context(), id, body.Name); err != nil {
			if errors.Is(err, types.ErrInvalidCategory) {
				return binderr.BadRequest(err.Error(), err)
			}
			if errors.Is(err, types.ErrCategoryNameTaken) {
				return binderr.Conflict("category name is taken", binderr.WithError(err))
			}
			if errors.Is(err, types.ErrCategoryNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func CategoryMoveHandler(dbcategory kdb.CategoryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		body := new(apicategories.Move)
		if err := json.NewDecoder(c.Request().Body).Decode(body); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		if err := dbcategory.Move(c.Request().Context(), id, body.ParentId); err != nil {
			if errors.Is(err, types.ErrCategoryCycle) {
				return binderr.Conflict(
					"can not move a category under its own subtree",
					binderr.WithError(err),
				)
			}
			if errors.Is(err, types.ErrCategoryNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func CategoryDeleteHandler(dbcategory kdb.CategoryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		if err := dbcategory.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, types.ErrCategoryNotEmpty) {
				return binderr.Conflict(
					"category has children", binderr.WithError(err),
				)
			}
			if errors.Is(err, types.ErrCategoryNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
