package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/errors"
	"github.com/RakshithaNagaraju74/MedWell/lifestyle"
)

func (h *Handler) ListActivityLogs(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	list, err := h.lifestyle.ListActivity(ctx, userId)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateActivityLog(c echo.Context) error {
	ctx := c.Request().Context()

	log := lifestyle.ActivityLog{}
	if err := c.Bind(&log); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if log.UserId == "" {
		return errors.NewBadRequest("userId is required")
	}
	log.Id = nil

	created, err := h.lifestyle.CreateActivity(ctx, log)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListSleepLogs(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	list, err := h.lifestyle.ListSleep(ctx, userId)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateSleepLog(c echo.Context) error {
	ctx := c.Request().Context()

	log := lifestyle.SleepLog{}
	if err := c.Bind(&log); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if log.UserId == "" {
		return errors.NewBadRequest("userId is required")
	}
	if log.Quality < 0 || log.Quality > 5 {
		return errors.NewBadRequest("quality must be between 0 and 5")
	}
	log.Id = nil

	created, err := h.lifestyle.CreateSleep(ctx, log)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, created)
}
