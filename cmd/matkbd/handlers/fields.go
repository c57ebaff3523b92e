package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	binderr "github.com/matkb/matkb/pkg/api-types-binding/errors"
	bindfields "github.com/matkb/matkb/pkg/api-types-binding/fields"
	apifields "github.com/matkb/matkb/pkg/api/types/fields"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/field/db"
)

func fieldParamOf(spec apifields.Spec) types.FieldParam {
	return types.FieldParam{
		Key:      spec.Key,
		Label:    spec.Label,
		Kind:     types.FieldKind(spec.Kind),
		Required: spec.Required,
		Options:  spec.Options,
		Position: spec.Position,
	}
}

func GetFieldsHandler(dbfield kdb.FieldInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		fields, err := dbfield.Find(c.Request().Context())
		if err != nil {
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindfields.ComposeDetails(fields))
	}
}

func FieldRegisterHandler(dbfield kdb.FieldInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}

		spec := new(apifields.Spec)
		if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		id, err := dbfield.Register(c.Request().Context(), fieldParamOf(*spec))
		if err != nil {
			if errors.Is(err, types.ErrInvalidField) {
				return binderr.BadRequest(err.Error(), err)
			}
			if errors.Is(err, types.ErrFieldKeyTaken) {
				return binderr.Conflict("field key is taken", binderr.WithError(err))
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, apifields.Created{Id: id})
	}
}

func FieldUpdateHandler(dbfield kdb.FieldInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		spec := new(apifields.Spec)
		if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		if err := dbfield.Update(c.Request().Context(), id, fieldParamOf(*spec)); err != nil {
			if errors.Is(err, types.ErrInvalidField) {
				return binderr.BadRequest(err.Error(), err)
			}
			if errors.Is(err, types.ErrFieldNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func FieldReorderHandler(dbfield kdb.FieldInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}

		order := new(apifields.Order)
		if err := json.NewDecoder(c.Request().Body).Decode(order); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		if err := dbfield.Reorder(c.Request().Context(), order.Ids); err != nil {
			if errors.Is(err, types.ErrInvalidField) {
				return binderr.BadRequest(err.Error(), err)
			}
			if errors.Is(err, types.ErrFieldNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func FieldDeleteHandler(dbfield kdb.FieldInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		if err := dbfield.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, types.ErrFieldNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
