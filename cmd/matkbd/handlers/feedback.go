package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	binderr "github.com/matkb/matkb/pkg/api-types-binding/errors"
	bindfeedback "github.com/matkb/matkb/pkg/api-types-binding/feedback"
	apifeedback "github.com/matkb/matkb/pkg/api/types/feedback"
	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/feedback/db"
	"github.com/matkb/matkb/pkg/utils/pointer"
)

func GetFeedbackHandler(dbfeedback kdb.FeedbackInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 0
		if q := c.QueryParam("limit"); q != "" {
			parsed, err := strconv.Atoi(q)
			if err != nil || parsed < 0 {
				return binderr.BadRequest("limit should be a non-negative integer", err)
			}
			limit = parsed
		}

		items, err := dbfeedback.Find(c.Request().Context(), limit)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindfeedback.ComposeDetails(items))
	}
}

func GetFeedbackCountHandler(dbfeedback kdb.FeedbackInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		count, err := dbfeedback.Count(c.Request().Context())
		if err != nil {
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, apifeedback.QueueLength{Count: count})
	}
}

func FeedbackEnqueueHandler(dbfeedback kdb.FeedbackInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}

		spec := new(apifeedback.Spec)
		if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		id, err := dbfeedback.Enqueue(c.Request().Context(), types.FeedbackParam{
			MaterialId:     spec.MaterialId,
			PredictedLabel: spec.PredictedLabel,
			Confidence:     spec.Confidence,
			Payload:        spec.Payload,
		})
		if err != nil {
			if errors.Is(err, types.ErrInvalidFeedback) {
				return binderr.BadRequest(err.Error(), err)
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, apifeedback.Created{Id: id})
	}
}

func FeedbackPopHandler(dbfeedback kdb.FeedbackInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var item *apifeedback.Detail
		popped, err := dbfeedback.Pop(
			c.Request().Context(),
			func(fb types.Feedback) error {
				item = pointer.Ref(bindfeedback.ComposeDetail(fb))
				return nil
			},
		)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, apifeedback.PopResult{
			Popped: popped, Item: item,
		})
	}
}
