package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	bindcluster "github.com/matkb/matkb/pkg/api-types-binding/cluster"
	binderr "github.com/matkb/matkb/pkg/api-types-binding/errors"
	types "github.com/matkb/matkb/pkg/domain"
	clusterk8s "github.com/matkb/matkb/pkg/domain/cluster/k8s"
	"github.com/matkb/matkb/pkg/domain/flux"
)

func GetPodsHandler(cluster clusterk8s.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		pods, err := cluster.ListPods(c.Request().Context())
		if err != nil {
			return binderr.ServiceUnavailable("can not reach the cluster", err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindcluster.ComposePods(pods))
	}
}

func GetEventsHandler(cluster clusterk8s.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		events, err := cluster.ListEvents(c.Request().Context())
		if err != nil {
			return binderr.ServiceUnavailable("can not reach the cluster", err)
		}

		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(http.StatusOK, bindcluster.ComposeEvents(events))
	}
}

func KillPodHandler(cluster clusterk8s.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("name")
		if name == "" {
			return binderr.BadRequest("pod name is required", nil)
		}

		if err := cluster.KillPod(c.Request().Context(), name); err != nil {
			if errors.Is(err, types.ErrPodNotFound) {
				return binderr.NotFound()
			}
			return binderr.ServiceUnavailable("can not reach the cluster", err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func RestartDeploymentHandler(cluster clusterk8s.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("name")
		if name == "" {
			return binderr.BadRequest("deployment name is required", nil)
		}

		if err := cluster.RestartDeployment(c.Request().Context(), name); err != nil {
			if errors.Is(err, types.ErrDeploymentNotFound) {
				return binderr.NotFound()
			}
			return binderr.ServiceUnavailable("can not reach the cluster", err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func GetFluxReportHandler(monitor *flux.Monitor) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		return c.JSON(
			http.StatusOK,
			bindcluster.ComposeFluxReport(monitor.Latest()),
		)
	}
}
