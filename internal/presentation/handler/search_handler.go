package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"photoshare/internal/application/usecase/abstraction"
	"photoshare/internal/domain/dto"
	"photoshare/internal/presentation"
)

type SearchPostsHandler struct {
	searcher abstraction.PostSearcher
}

func NewSearchPostsHandler(searcher abstraction.PostSearcher) *SearchPostsHandler {
	return &SearchPostsHandler{
		searcher: searcher,
	}
}

// Handle handles GET /api/posts/search/:searchTerm requests.
func (h *SearchPostsHandler) Handle(c echo.Context) error {
	term := c.Param(presentation.SearchTermParam)

	// echo routes on the raw path when it carries escapes such as %2F.
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(term); err == nil {
			term = unescaped
		}
	}

	posts, err := h.searcher.Search(c.Request().Context(), term)
	if err != nil {
		return respondError(c, err, "Post")
	}

	return c.JSON(http.StatusOK, dto.PostsResponse{
		Posts:   posts,
		Message: "Posts fetched successfully",
	})
}
