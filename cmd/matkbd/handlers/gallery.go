package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	binderr "github.com/matkb/matkb/pkg/api-types-binding/errors"
	bindgallery "github.com/matkb/matkb/pkg/api-types-binding/gallery"
	apigallery "github.com/matkb/matkb/pkg/api/types/gallery"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/gallery/db"
)

func referenceEntryParamOf(spec apigallery.Spec) types.ReferenceEntryParam {
	return types.ReferenceEntryParam{
		Property:   spec.Property,
		ValueLabel: spec.ValueLabel,
		ImageURL:   spec.ImageURL,
		Caption:    spec.Caption,
		Position:   spec.Position,
	}
}

func GetGalleryHandler(dbgallery kdb.GalleryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := dbgallery.Find(
			c.Request().Context(), c.QueryParam("property"),
		)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindgallery.ComposeDetails(entries))
	}
}

func GalleryRegisterHandler(dbgallery kdb.GalleryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}

		spec := new(apigallery.Spec)
		if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		id, err := dbgallery.Register(
			c.Request().Context(), referenceEntryParamOf(*spec),
		)
		if err != nil {
			if errors.Is(err, types.ErrInvalidReferenceEntry) {
				return binderr.BadRequest(err.Error(), err)
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, apigallery.Created{Id: id})
	}
}

func GalleryUpdateHandler(dbgallery kdb.GalleryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		spec := new(apigallery.Spec)
		if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		if err := dbgallery.Update(
			c.Request().Context(), id, referenceEntryParamOf(*spec),
		); err != nil {
			if errors.Is(err, types.ErrInvalidReferenceEntry) {
				return binderr.BadRequest(err.Error(), err)
			}
			if errors.Is(err, types.ErrReferenceEntryNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func GalleryDeleteHandler(dbgallery kdb.GalleryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		if err := dbgallery.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, types.ErrReferenceEntryNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
