package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/errors"
	"github.com/RakshithaNagaraju74/MedWell/reminders"
)

type createReminderRequest struct {
	UserId      string    `json:"userId"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"dueDate"`
	Description string    `json:"description"`
}

func (h *Handler) ListReminders(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	list, err := h.reminders.List(ctx, userId)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateReminder(c echo.Context) error {
	ctx := c.Request().Context()

	req := createReminderRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if req.UserId == "" || req.Title == "" || req.DueDate.IsZero() {
		return errors.NewBadRequest("userId, title and dueDate are required")
	}

	reminder, err := h.reminders.Create(ctx, reminders.Reminder{
		UserId:      req.UserId,
		Title:       req.Title,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, reminder)
}
