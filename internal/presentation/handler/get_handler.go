package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photoshare/internal/application/usecase/abstraction"
	"photoshare/internal/domain/dto"
	"photoshare/internal/presentation"
)

type GetPostHandler struct {
	getter abstraction.PostGetter
}

func NewGetPostHandler(getter abstraction.PostGetter) *GetPostHandler {
	return &GetPostHandler{
		getter: getter,
	}
}

// Handle handles GET /api/posts/:id requests.
func (h *GetPostHandler) Handle(c echo.Context) error {
	post, err := h.getter.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, err, "Post")
	}

	return c.JSON(http.StatusOK, dto.PostResponse{
		Post:    post,
		Message: "Post fetched successfully",
	})
}

type GetUserHandler struct {
	getter abstraction.UserGetter
}

func NewGetUserHandler(getter abstraction.UserGetter) *GetUserHandler {
	return &GetUserHandler{
		getter: getter,
	}
}

// Handle handles GET /api/users/:id requests.
func (h *GetUserHandler) Handle(c echo.Context) error {
	user, err := h.getter.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, err, "User")
	}

	return c.JSON(http.StatusOK, dto.UserResponse{
		User:    user,
		Message: "User fetched successfully",
	})
}
