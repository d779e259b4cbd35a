package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/errors"
	"github.com/RakshithaNagaraju74/MedWell/symptomlog"
)

type createSymptomLogRequest struct {
	UserId   string    `json:"userId"`
	Symptoms []string  `json:"symptoms"`
	Severity int       `json:"severity"`
	Notes    string    `json:"notes"`
	LoggedAt time.Time `json:"loggedAt"`
}

func (h *Handler) ListSymptomLogs(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	list, err := h.symptoms.List(ctx, userId)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateSymptomLog(c echo.Context) error {
	ctx := c.Request().Context()

	req := createSymptomLogRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if req.UserId == "" || len(req.Symptoms) == 0 {
		return errors.NewBadRequest("userId and symptoms are required")
	}
	if req.Severity < 0 || req.Severity > 10 {
		return errors.NewBadRequest("severity must be between 0 and 10")
	}

	entry, err := h.symptoms.Create(ctx, symptomlog.Entry{
		UserId:   req.UserId,
		Symptoms: req.Symptoms,
		Severity: req.Severity,
		Notes:    req.Notes,
		LoggedAt: req.LoggedAt,
	})
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, entry)
}
