package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-posts-backend/internal/api/response"
	apperrors "github.com/welldanyogia/webrana-posts-backend/internal/errors"
	"github.com/welldanyogia/webrana-posts-backend/internal/services"
	"github.com/welldanyogia/webrana-posts-backend/internal/validator"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	service services.PostService
	logger  *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service services.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{service: service, logger: logger}
}

// Create handles POST /api/v1/posts
func (h *PostHandler) Create(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return response.Error(c, err)
	}

	id, err := h.service.Create(c.Request().Context(), req.ToCommand())
	if err != nil {
		return h.fail(c, err)
	}

	return response.Identifier(c, id)
}

// Update handles PUT /api/v1/posts/:id
func (h *PostHandler) Update(c echo.Context) error {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid post ID")
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return response.Error(c, err)
	}

	updated, err := h.service.Update(c.Request().Context(), id, req.ToCommand())
	if err != nil {
		return h.fail(c, err)
	}

	return response.Identifier(c, updated)
}

// Get handles GET /api/v1/posts/:id
func (h *PostHandler) Get(c echo.Context) error {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid post ID")
	}

	post, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.NotFound(c, "post not found")
		}
		return h.fail(c, err)
	}

	return response.Success(c, NewPostResponse(post))
}

// List handles GET /api/v1/posts
func (h *PostHandler) List(c echo.Context) error {
	limit, offset := validator.ParsePagination(c.QueryParam("limit"), c.QueryParam("offset"))

	posts, total, err := h.service.List(c.Request().Context(), limit, offset)
	if err != nil {
		return h.fail(c, err)
	}

	return response.Paginated(c, newPostList(posts), total, limit, offset)
}

// fail writes the error response, logging server-side failures with their detail
func (h *PostHandler) fail(c echo.Context, err error) error {
	code := apperrors.GetErrorCode(err)
	if apperrors.HTTPStatus(code) >= http.StatusInternalServerError {
		h.logger.Error("post request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
	}
	return response.Error(c, err)
}
