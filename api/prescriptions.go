package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/errors"
	"github.com/RakshithaNagaraju74/MedWell/prescriptions"
)

type createPrescriptionRequest struct {
	UserId       string    `json:"userId"`
	Medication   string    `json:"medication"`
	Dosage       string    `json:"dosage"`
	Doctor       string    `json:"doctor"`
	Notes        string    `json:"notes"`
	PrescribedAt time.Time `json:"prescribedAt"`
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	list, err := h.prescriptions.List(ctx, userId)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	ctx := c.Request().Context()

	req := createPrescriptionRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if req.UserId == "" || req.Medication == "" {
		return errors.NewBadRequest("userId and medication are required")
	}

	prescription, err := h.prescriptions.Create(ctx, prescriptions.Prescription{
		UserId:       req.UserId,
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Doctor:       req.Doctor,
		Notes:        req.Notes,
		PrescribedAt: req.PrescribedAt,
	})
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, prescription)
}

func (h *Handler) DeletePrescription(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	err := h.prescriptions.Delete(ctx, userId, c.Param("id"))
	if err == prescriptions.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return errors.NewInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}
