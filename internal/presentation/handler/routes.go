package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"photoshare/internal/application/usecase/abstraction"
	"photoshare/internal/presentation"
)

type Usecases struct {
	PostUploader abstraction.PostUploader
	PostLister   abstraction.PostLister
	PostGetter   abstraction.PostGetter
	PostDeleter  abstraction.PostDeleter
	PostSearcher abstraction.PostSearcher
	UserUploader abstraction.UserUploader
	UserLister   abstraction.UserLister
	UserGetter   abstraction.UserGetter
}

// Register mounts the photo and user routes on g.
func Register(g *echo.Group, u Usecases) {
	idPath := fmt.Sprintf("/:%s", presentation.IDParam)

	posts := g.Group("/posts")
	posts.POST("", NewUploadPostHandler(u.PostUploader).Handle)
	posts.GET("", NewListPostsHandler(u.PostLister).Handle)
	posts.GET(fmt.Sprintf("/search/:%s", presentation.SearchTermParam), NewSearchPostsHandler(u.PostSearcher).Handle)
	posts.GET(idPath, NewGetPostHandler(u.PostGetter).Handle)
	posts.DELETE(idPath, NewDeletePostHandler(u.PostDeleter).Handle)

	users := g.Group("/users")
	users.POST("", NewUploadUserHandler(u.UserUploader).Handle)
	users.GET("", NewListUsersHandler(u.UserLister).Handle)
	users.GET(idPath, NewGetUserHandler(u.UserGetter).Handle)
}
