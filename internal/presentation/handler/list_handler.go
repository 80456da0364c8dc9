package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photoshare/internal/application/usecase/abstraction"
	"photoshare/internal/domain/dto"
)

type ListPostsHandler struct {
	lister abstraction.PostLister
}

func NewListPostsHandler(lister abstraction.PostLister) *ListPostsHandler {
	return &ListPostsHandler{
		lister: lister,
	}
}

// Handle handles GET /api/posts requests.
func (h *ListPostsHandler) Handle(c echo.Context) error {
	posts, err := h.lister.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Post")
	}

	return c.JSON(http.StatusOK, dto.PostsResponse{
		Posts:   posts,
		Message: "Posts fetched successfully",
	})
}

type ListUsersHandler struct {
	lister abstraction.UserLister
}

func NewListUsersHandler(lister abstraction.UserLister) *ListUsersHandler {
	return &ListUsersHandler{
		lister: lister,
	}
}

// Handle handles GET /api/users requests.
func (h *ListUsersHandler) Handle(c echo.Context) error {
	users, err := h.lister.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "User")
	}

	return c.JSON(http.StatusOK, dto.UsersResponse{
		Users:   users,
		Message: "Users fetched successfully",
	})
}
