package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/learnplaygrow/backend/core/catalog"
)

type catalogApi struct {
	svc *catalog.Service
}

func registerCatalogAPI(g *echo.Group, svc *catalog.Service) {
	api := catalogApi{svc: svc}

	g.GET("/subjects", api.subjects)
	g.GET("/leaderboard", api.leaderboard)
	g.GET("/events", api.events)

	sg := g.Group("/students/:id")
	sg.GET("/subjects", api.studentSubjects)
	sg.GET("/badges", api.studentBadges)
	sg.GET("/videos", api.studentVideos)
	sg.GET("/progress", api.studentProgress)
	sg.GET("/dashboard", api.studentDashboard)
}

// DataResponse is the `{"data": ...}` envelope the frontend consumes.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// Handlers

func (api *catalogApi) subjects(ctx echo.Context) error {
	subjects, err := api.svc.Subjects(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: subjects})
}

func (api *catalogApi) leaderboard(ctx echo.Context) error {
	// a missing or unparseable limit means the full board
	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil {
		limit = 0
	}

	entries, err := api.svc.Leaderboard(ctx.Request().Context(), limit)
	if err != nil {
		return errors.Wrap(err, "querying leaderboard")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: entries})
}

func (api *catalogApi) events(ctx echo.Context) error {
	events, err := api.svc.Events(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying events")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: events})
}

func (api *catalogApi) studentSubjects(ctx echo.Context) error {
	subjects, err := api.svc.StudentSubjects(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student subjects")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: subjects})
}

func (api *catalogApi) studentBadges(ctx echo.Context) error {
	badges, err := api.svc.StudentBadges(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student badges")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: badges})
}

func (api *catalogApi) studentVideos(ctx echo.Context) error {
	videos, err := api.svc.StudentVideos(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student videos")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: videos})
}

func (api *catalogApi) studentProgress(ctx echo.Context) error {
	progress, err := api.svc.StudentProgress(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student progress")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: progress})
}

func (api *catalogApi) studentDashboard(ctx echo.Context) error {
	dash, err := api.svc.Dashboard(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "assembling dashboard")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: dash})
}
