package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogforge/backend/internal/model"
	"github.com/blogforge/backend/internal/service"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// List godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListByUser godoc
// @Summary List a user's posts
// @Tags posts
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.Post
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users/{id}/posts [get]
func (h *PostHandler) ListByUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	posts, err := h.svc.ListByUser(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListMine godoc
// @Summary List the authenticated user's posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Post
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/user/posts [get]
func (h *PostHandler) ListMine(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	posts, err := h.svc.ListOwn(c.Request.Context(), identity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Create godoc
// @Summary Create a post
// @Description The post's owner is the authenticated user; the body carries
// no owner field.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreatePostRequest true "Title and body"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	post, err := h.svc.Create(c.Request.Context(), identity, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.UpdatePostRequest true "Fields to update"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	post, err := h.svc.Update(c.Request.Context(), identity, id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), identity, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "post deleted"})
}
