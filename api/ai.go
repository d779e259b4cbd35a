package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/ai"
	"github.com/RakshithaNagaraju74/MedWell/errors"
)

type identifySymptomsRequest struct {
	Symptoms []string `json:"symptoms"`
}

type chatRequest struct {
	Message     string           `json:"message"`
	ChatHistory []ai.ChatMessage `json:"chatHistory"`
}

func (h *Handler) IdentifySymptoms(c echo.Context) error {
	ctx := c.Request().Context()

	req := identifySymptomsRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if len(req.Symptoms) == 0 {
		return errors.NewBadRequest("symptoms must be a non-empty list")
	}

	result, err := h.ai.IdentifyConditions(ctx, req.Symptoms)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"result": result})
}

func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	req := chatRequest{}
	if err := c.Bind(&req); err != nil {
		return errors.NewBadRequest("invalid request body")
	}
	if req.Message == "" {
		return errors.NewBadRequest("message is required")
	}

	response, err := h.ai.Chat(ctx, req.Message, req.ChatHistory)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"response": response})
}
