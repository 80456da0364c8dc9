package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/dto"
	"photoshare/internal/domain/model"
)

func newTestServer(m *mocks) *echo.Echo {
	e := echo.New()
	Register(e.Group("/api"), m.usecases())

	return e
}

func multipartBody(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("file", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected int
	}{
		{fmt.Errorf("x: %w", apperror.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("x: %w", apperror.ErrConflict), http.StatusBadRequest},
		{fmt.Errorf("x: %w", apperror.ErrImage), http.StatusBadRequest},
		{fmt.Errorf("x: %w", apperror.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("x: %w", apperror.ErrStorage), http.StatusInternalServerError},
		{fmt.Errorf("x: %w", apperror.ErrRepository), http.StatusInternalServerError},
		{apperror.ErrNotConnected, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, statusFor(tt.err), tt.err.Error())
	}
}

func TestUploadPost(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.postUploader.On("Upload", mock.Anything, dto.NewPost{
			Caption: "sunset", SearchTerm: "beach", PostedBy: "u1", File: []byte("img"),
		}).Return("post-id", nil)

		body, ct := multipartBody(t, map[string]string{
			"caption": "sunset", "searchTerm": "beach", "postedBy": "u1",
		}, []byte("img"))
		req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
		req.Header.Set(echo.HeaderContentType, ct)

		rec := do(newTestServer(m), req)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[dto.CreatedResponse](t, rec)
		assert.Equal(t, "File uploaded successfully", resp.Message)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "post-id", resp.ID)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		body, ct := multipartBody(t, map[string]string{"caption": "x"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
		req.Header.Set(echo.HeaderContentType, ct)

		rec := do(newTestServer(m), req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.postUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("not an image", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.postUploader.On("Upload", mock.Anything, mock.Anything).Return("", apperror.ErrImage)

		body, ct := multipartBody(t, nil, []byte("text"))
		req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
		req.Header.Set(echo.HeaderContentType, ct)

		rec := do(newTestServer(m), req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage failure hides internals", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.postUploader.On("Upload", mock.Anything, mock.Anything).
			Return("", fmt.Errorf("%w: secret endpoint detail", apperror.ErrStorage))

		body, ct := multipartBody(t, nil, []byte("img"))
		req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
		req.Header.Set(echo.HeaderContentType, ct)

		rec := do(newTestServer(m), req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
		assert.Equal(t, internalErrorMessage, decode[dto.MessageResponse](t, rec).Message)
	})
}

func TestUploadUser(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.userUploader.On("Upload", mock.Anything, dto.NewUser{
			FirstName: "Ada", LastName: "Lovelace", Username: "ada", File: []byte("img"),
		}).Return("user-id", nil)

		body, ct := multipartBody(t, map[string]string{
			"firstName": "Ada", "lastName": "Lovelace", "username": "ada",
		}, []byte("img"))
		req := httptest.NewRequest(http.MethodPost, "/api/users", body)
		req.Header.Set(echo.HeaderContentType, ct)

		rec := do(newTestServer(m), req)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.CreatedResponse](t, rec)
		assert.Equal(t, "User created successfully", resp.Message)
		assert.Equal(t, "user-id", resp.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.userUploader.On("Upload", mock.Anything, mock.Anything).
			Return("", fmt.Errorf("save user: %w", apperror.ErrConflict))

		body, ct := multipartBody(t, map[string]string{"username": "ada"}, []byte("img"))
		req := httptest.NewRequest(http.MethodPost, "/api/users", body)
		req.Header.Set(echo.HeaderContentType, ct)

		rec := do(newTestServer(m), req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User already exists", decode[dto.MessageResponse](t, rec).Message)
	})
}

func TestListAndGetPosts(t *testing.T) {
	t.Parallel()

	view := dto.PostView{Post: model.Post{ID: "p1", BlobKey: "k.jpg", SearchTerm: "beach"}, ImageURL: "https://signed"}

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.postLister.On("List", mock.Anything).Return([]dto.PostView{view}, nil)

		rec := do(newTestServer(m), httptest.NewRequest(http.MethodGet, "/api/posts", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.Equal(t, "Posts fetched successfully", raw["message"])
		posts := raw["posts"].([]any)
		require.Len(t, posts, 1)
		first := posts[0].(map[string]any)
		assert.Equal(t, "p1", first["id"])
		assert.Equal(t, "https://signed", first["imageUrl"])
	})

	t.Run("list signing failure", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.postLister.On("List", mock.Anything).Return(nil, apperror.ErrStorage)

		rec := do(newTestServer(m), httptest.NewRequest(http.MethodGet, "/api/posts", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.postGetter.On("Get", mock.Anything, "p1").Return(view, nil)

		rec := do(newTestServer(m), httptest.NewRequest(http.MethodGet, "/api/posts/p1", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.PostResponse](t, rec)
		assert.Equal(t, "Post fetched successfully", resp.Message)
		assert.Equal(t, "https://signed", resp.Post.ImageURL)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()

		m := newMocks()
		m.postGetter.On("Get", mock.Anything, "nope").Return(dto.PostView{}, apperror.ErrNotFound)

		rec := do(newTestServer(m), httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Post not found", decode[dto.MessageResponse](t, rec).Message)
	})
}

func TestSearchPosts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		term string
	}{
		{"plain", "/api/posts/search/beach", "beach"},
		{"dot", "/api/posts/search/a.b", "a.b"},
		{"space", "/api/posts/search/summer%20trip", "summer trip"},
		{"escaped slash", "/api/posts/search/a%2Fb", "a/b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMocks()
			m.postSearcher.On("Search", mock.Anything, tt.term).Return([]dto.PostView{}, nil)

			rec := do(newTestServer(m), httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Posts fetched successfully", decode[dto.PostsResponse](t, rec).Message)
			m.postSearcher.AssertExpectations(t)
			m.postGetter.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		})
	}
}

func TestDeletePost(t *testing.T) {
	t.Parallel()

	m := newMocks()
	m.postDeleter.On("Delete", mock.Anything, "p1").Return(nil)
	m.postDeleter.On("Delete", mock.Anything, "missing").Return(apperror.ErrNotFound)
	m.postDeleter.On("Delete", mock.Anything, "broken").Return(apperror.ErrStorage)
	e := newTestServer(m)

	rec := do(e, httptest.NewRequest(http.MethodDelete, "/api/posts/p1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Post deleted successfully", decode[dto.MessageResponse](t, rec).Message)

	rec = do(e, httptest.NewRequest(http.MethodDelete, "/api/posts/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, httptest.NewRequest(http.MethodDelete, "/api/posts/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUsers(t *testing.T) {
	t.Parallel()

	view := dto.UserView{User: model.User{ID: "u1", Username: "ada"}, ProfilePictureURL: "https://signed/u1"}

	m := newMocks()
	m.userLister.On("List", mock.Anything).Return([]dto.UserView{view}, nil)
	m.userGetter.On("Get", mock.Anything, "u1").Return(view, nil)
	m.userGetter.On("Get", mock.Anything, "missing").Return(dto.UserView{}, apperror.ErrNotFound)
	e := newTestServer(m)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dto.UsersResponse](t, rec)
	assert.Equal(t, "Users fetched successfully", list.Message)
	require.Len(t, list.Users, 1)
	assert.Equal(t, "https://signed/u1", list.Users[0].ProfilePictureURL)

	rec = do(e, httptest.NewRequest(http.MethodGet, "/api/users/u1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User fetched successfully", decode[dto.UserResponse](t, rec).Message)

	rec = do(e, httptest.NewRequest(http.MethodGet, "/api/users/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode[dto.MessageResponse](t, rec).Message)
}
