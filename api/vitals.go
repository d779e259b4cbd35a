package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/errors"
	"github.com/RakshithaNagaraju74/MedWell/pointer"
	"github.com/RakshithaNagaraju74/MedWell/vitals"
)

type createVitalRequest struct {
	UserId     string    `json:"userId"`
	Type       string    `json:"type"`
	Value      string    `json:"value"`
	Unit       string    `json:"unit"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recordedAt"`
}

func (h *Handler) ListVitals(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	filter := vitals.Filter{UserId: userId}
	if readingType := c.QueryParam("type"); readingType != "" {
		filter.Type = pointer.FromAny(readingType)
	}

	list, err := h.vitals.List(ctx, filter)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateVital(c echo.Context) error {
	ctx := c.Request().Context()

	req := createVitalRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if req.UserId == "" || req.Type == "" || req.Value == "" {
		return errors.NewBadRequest("userId, type and value are required")
	}

	reading, err := h.vitals.Create(ctx, vitals.Reading{
		UserId:     req.UserId,
		Type:       req.Type,
		Value:      req.Value,
		Unit:       req.Unit,
		Notes:      req.Notes,
		RecordedAt: req.RecordedAt,
	})
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, reading)
}
