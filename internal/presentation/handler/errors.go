package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/dto"
	"photoshare/pkg/logger"
)

const internalErrorMessage = "Internal server error"

// statusFor maps the error taxonomy to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict),
		errors.Is(err, apperror.ErrImage),
		errors.Is(err, apperror.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a JSON {message} body. resource names the entity in
// not-found and conflict messages. Server errors are logged and not echoed back.
func respondError(c echo.Context, err error, resource string) error {
	status := statusFor(err)

	var message string
	switch {
	case status == http.StatusInternalServerError:
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
		message = internalErrorMessage
	case errors.Is(err, apperror.ErrNotFound):
		message = resource + " not found"
	case errors.Is(err, apperror.ErrConflict):
		message = resource + " already exists"
	case errors.Is(err, apperror.ErrImage):
		message = "Uploaded file is not a supported image"
	default:
		message = err.Error()
	}

	return c.JSON(status, dto.MessageResponse{Message: message})
}
