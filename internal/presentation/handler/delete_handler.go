package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photoshare/internal/application/usecase/abstraction"
	"photoshare/internal/domain/dto"
	"photoshare/internal/presentation"
)

type DeletePostHandler struct {
	deleter abstraction.PostDeleter
}

func NewDeletePostHandler(deleter abstraction.PostDeleter) *DeletePostHandler {
	return &DeletePostHandler{
		deleter: deleter,
	}
}

// Handle handles DELETE /api/posts/:id requests.
func (h *DeletePostHandler) Handle(c echo.Context) error {
	if err := h.deleter.Delete(c.Request().Context(), c.Param(presentation.IDParam)); err != nil {
		return respondError(c, err, "Post")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Post deleted successfully"})
}
