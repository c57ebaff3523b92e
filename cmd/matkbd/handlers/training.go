package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	binderr "github.com/matkb/matkb/pkg/api-types-binding/errors"
	bindtraining "github.com/matkb/matkb/pkg/api-types-binding/training"
	apitraining "github.com/matkb/matkb/pkg/api/types/training"
	types "github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/domain/training"
	kdb "github.com/matkb/matkb/pkg/domain/training/db"
	"github.com/matkb/matkb/pkg/domain/training/telemetry"
)

func FindTrainingHandler(dbtraining kdb.TrainingInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessions, err := dbtraining.Find(c.Request().Context())
		if err != nil {
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindtraining.ComposeDetails(sessions))
	}
}

func GetTrainingHandler(dbtraining kdb.TrainingInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		ses, err := dbtraining.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, types.ErrSessionNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindtraining.ComposeDetail(ses))
	}
}

func TrainingRegisterHandler(dbtraining kdb.TrainingInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}

		spec := new(apitraining.Spec)
		if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		id, err := dbtraining.Register(c.Request().Context(), types.TrainingSessionParam{
			ModelName: spec.ModelName,
			Image:     spec.Image,
			ServerURL: spec.ServerURL,
		})
		if err != nil {
			if errors.Is(err, types.ErrInvalidSession) {
				return binderr.BadRequest(err.Error(), err)
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, apitraining.Created{Id: id})
	}
}

func TrainingDeleteHandler(dbtraining kdb.TrainingInterface, sessions *training.Watcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		sessions.Detach(id)
		if err := dbtraining.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, types.ErrSessionNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func TrainingWatchHandler(sessions *training.Watcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		cli, err := sessions.Attach(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, types.ErrSessionNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindtraining.ComposeTelemetry(id, cli))
	}
}

func TrainingUnwatchHandler(sessions *training.Watcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		sessions.Detach(id)
		return c.NoContent(http.StatusNoContent)
	}
}

func TrainingReconnectHandler(sessions *training.Watcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		if err := sessions.Reconnect(c.Request().Context(), id); err != nil {
			if errors.Is(err, types.ErrSessionNotFound) {
				return binderr.NotFound()
			}
			return binderr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func GetTelemetryHandler(sessions *training.Watcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		cli, ok := sessions.Get(id)
		if !ok {
			return binderr.NotFound()
		}

		sessions.FoldStatus(c.Request().Context(), id)

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindtraining.ComposeTelemetry(id, cli))
	}
}

func TrainingCommandHandler(sessions *training.Watcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		if herr := requireJson(c); herr != nil {
			return herr
		}
		id, herr := pathParamId(c, "id")
		if herr != nil {
			return herr
		}

		body := new(apitraining.Command)
		if err := json.NewDecoder(c.Request().Body).Decode(body); err != nil {
			return binderr.BadRequest("can not understand the requested json", err)
		}

		var cmd telemetry.Command
		switch body.Command {
		case string(telemetry.CommandPause):
			cmd = telemetry.CommandPause
		case string(telemetry.CommandResume):
			cmd = telemetry.CommandResume
		case string(telemetry.CommandStop):
			cmd = telemetry.CommandStop
		default:
			return binderr.BadRequest(
				"command should be one of pause, resume, stop", nil,
			)
		}

		cli, ok := sessions.Get(id)
		if !ok {
			return binderr.NotFound()
		}

		cli.SendCommand(cmd)

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindtraining.ComposeTelemetry(id, cli))
	}
}
