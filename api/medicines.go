package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/errors"
	"github.com/RakshithaNagaraju74/MedWell/medicines"
)

type createMedicineRequest struct {
	UserId    string     `json:"userId"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (h *Handler) ListMedicines(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	list, err := h.medicines.List(ctx, userId)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateMedicine(c echo.Context) error {
	ctx := c.Request().Context()

	req := createMedicineRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if req.UserId == "" || req.Name == "" {
		return errors.NewBadRequest("userId and name are required")
	}

	medicine, err := h.medicines.Create(ctx, medicines.Medicine{
		UserId:    req.UserId,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, medicine)
}

func (h *Handler) UpdateMedicine(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	update := medicines.Update{}
	if err := c.Bind(&update); err != nil {
		return errors.NewBadRequest("invalid request body")
	}

	medicine, err := h.medicines.Update(ctx, userId, c.Param("id"), update)
	if err == medicines.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, medicine)
}

func (h *Handler) DeleteMedicine(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	err := h.medicines.Delete(ctx, userId, c.Param("id"))
	if err == medicines.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return errors.NewInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}
