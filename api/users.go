package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/errors"
	"github.com/RakshithaNagaraju74/MedWell/users"
)

func (h *Handler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	user, err := h.users.Get(ctx, userId)
	if err == users.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpsertProfile(c echo.Context) error {
	ctx := c.Request().Context()

	user := users.User{}
	if err := c.Bind(&user); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if user.UserId == "" || user.Name == "" || user.Email == "" {
		return errors.NewBadRequest("userId, name and email are required")
	}

	result, err := h.users.Upsert(ctx, user)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	attributes := map[string]interface{}{}
	if err := c.Bind(&attributes); err != nil {
		return errors.NewBadRequest("invalid request body")
	}

	result, err := h.users.Update(ctx, userId, attributes)
	if err == users.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, result)
}
