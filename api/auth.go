package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/auth"
	"github.com/RakshithaNagaraju74/MedWell/errors"
)

type registerRequest struct {
	UserId   string `json:"userId"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	req := registerRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if req.UserId == "" || req.Email == "" || req.Password == "" {
		return errors.NewBadRequest("userId, email and password are required")
	}

	session, err := h.auth.Register(ctx, req.UserId, req.Email, req.Password)
	if err == auth.ErrDuplicateEmail {
		return errors.Duplicate
	} else if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, session)
}

func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	req := loginRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return errors.NewBadRequest("email and password are required")
	}

	session, err := h.auth.Login(ctx, req.Email, req.Password)
	if err == auth.ErrInvalidCredentials {
		return errors.Unauthorized
	} else if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, session)
}
