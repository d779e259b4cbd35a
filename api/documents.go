package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RakshithaNagaraju74/MedWell/documents"
	"github.com/RakshithaNagaraju74/MedWell/errors"
)

func (h *Handler) ListDocuments(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.QueryParam("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	list, err := h.documents.List(ctx, userId)
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UploadDocument(c echo.Context) error {
	ctx := c.Request().Context()

	userId := c.FormValue("userId")
	if userId == "" {
		return errors.NewBadRequest("userId is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.NewBadRequest("file is required")
	}

	title := c.FormValue("title")
	if title == "" {
		title = fileHeader.Filename
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.NewInternal(err)
	}
	defer src.Close()

	storedName, err := h.storage.Save(fileHeader.Filename, src)
	if err != nil {
		return errors.NewInternal(err)
	}

	document, err := h.documents.Create(ctx, documents.Document{
		UserId:      userId,
		Title:       title,
		FileName:    fileHeader.Filename,
		StoredName:  storedName,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	})
	if err != nil {
		return errors.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, document)
}
