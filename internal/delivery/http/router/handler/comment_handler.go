package handler

import (
	"net/http"

	"pantry/internal/delivery/http/response"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for the append-only comment feeds.
type CommentHandler struct {
	uc usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

type postCommentInput struct {
	Text string `json:"text" validate:"required"`
}

// PostRecipeComment appends a comment to one recipe's feed.
func (h *CommentHandler) PostRecipeComment(c echo.Context) error {
	username, ok := authenticatedUsername(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var input postCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.uc.PostRecipeComment(c.Request().Context(), username, c.Param("id"), input.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment posted")
}

// ListRecipeComments returns one recipe's comments in insertion order.
func (h *CommentHandler) ListRecipeComments(c echo.Context) error {
	comments, err := h.uc.ListRecipeComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"comments": comments,
		"count":    len(comments),
	}, "")
}

// PostGeneralComment appends a comment to the general feed.
func (h *CommentHandler) PostGeneralComment(c echo.Context) error {
	username, ok := authenticatedUsername(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var input postCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.uc.PostGeneralComment(c.Request().Context(), username, input.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment posted")
}

// ListGeneralComments returns the general feed, newest first.
func (h *CommentHandler) ListGeneralComments(c echo.Context) error {
	comments, err := h.uc.ListGeneralComments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"comments": comments,
		"count":    len(comments),
	}, "")
}
