package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"photoshare/internal/application/usecase/abstraction"
	"photoshare/internal/domain/apperror"
	"photoshare/internal/domain/dto"
	"photoshare/internal/presentation"
)

type UploadPostHandler struct {
	uploader abstraction.PostUploader
}

func NewUploadPostHandler(uploader abstraction.PostUploader) *UploadPostHandler {
	return &UploadPostHandler{
		uploader: uploader,
	}
}

// Handle handles POST /api/posts multipart requests.
func (h *UploadPostHandler) Handle(c echo.Context) error {
	file, err := readFormFile(c)
	if err != nil {
		return respondError(c, err, "Post")
	}

	id, err := h.uploader.Upload(c.Request().Context(), dto.NewPost{
		Caption:    c.FormValue(presentation.CaptionField),
		SearchTerm: c.FormValue(presentation.SearchTermField),
		PostedBy:   c.FormValue(presentation.PostedByField),
		File:       file,
	})
	if err != nil {
		return respondError(c, err, "Post")
	}

	return c.JSON(http.StatusOK, dto.CreatedResponse{
		Message: "File uploaded successfully",
		Status:  http.StatusOK,
		ID:      id,
	})
}

type UploadUserHandler struct {
	uploader abstraction.UserUploader
}

func NewUploadUserHandler(uploader abstraction.UserUploader) *UploadUserHandler {
	return &UploadUserHandler{
		uploader: uploader,
	}
}

// Handle handles POST /api/users multipart requests.
func (h *UploadUserHandler) Handle(c echo.Context) error {
	file, err := readFormFile(c)
	if err != nil {
		return respondError(c, err, "User")
	}

	id, err := h.uploader.Upload(c.Request().Context(), dto.NewUser{
		FirstName: c.FormValue(presentation.FirstNameField),
		LastName:  c.FormValue(presentation.LastNameField),
		Username:  c.FormValue(presentation.UsernameField),
		File:      file,
	})
	if err != nil {
		return respondError(c, err, "User")
	}

	return c.JSON(http.StatusOK, dto.CreatedResponse{
		Message: "User created successfully",
		Status:  http.StatusOK,
		ID:      id,
	})
}

func readFormFile(c echo.Context) ([]byte, error) {
	header, err := c.FormFile(presentation.FileField)
	if err != nil {
		return nil, fmt.Errorf("%w: multipart field %q is required", apperror.ErrInvalidInput, presentation.FileField)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open upload: %w", apperror.ErrInvalidInput, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read upload: %w", apperror.ErrInvalidInput, err)
	}

	return data, nil
}
