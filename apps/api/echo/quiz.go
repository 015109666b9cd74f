package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/learnplaygrow/backend/core/quiz"
)

type quizApi struct {
	svc *quiz.Service
}

func registerQuizAPI(g *echo.Group, svc *quiz.Service) {
	api := quizApi{svc: svc}

	qg := g.Group("/quizzes/:id")
	qg.GET("", api.retrieve)
	qg.POST("/submit", api.submit)
}

func (api *quizApi) retrieve(ctx echo.Context) error {
	q, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == quiz.ErrNotFound {
			return ctx.JSON(http.StatusNotFound, echo.Map{"error": "Quiz not found"})
		}
		return errors.Wrap(err, "getting quiz")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: q})
}

func (api *quizApi) submit(ctx echo.Context) error {
	var data quiz.Submission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Submission")
	}

	result, err := api.svc.Grade(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == quiz.ErrNotFound {
			return ctx.JSON(http.StatusNotFound, echo.Map{"error": "Quiz not found"})
		}
		return errors.Wrap(err, "grading quiz")
	}
	return ctx.JSON(http.StatusCreated, DataResponse{Data: result})
}
