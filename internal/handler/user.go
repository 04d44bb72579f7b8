package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogforge/backend/internal/model"
	"github.com/blogforge/backend/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Username, email and password"
// @Success 200 {object} model.PublicUser
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// Login godoc
// @Summary Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, expiresIn, user, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      user.Public(),
	})
}

// Logout godoc
// @Summary Logout
// @Description Tokens are stateless; the server keeps no session to revoke,
// so this always succeeds and the token stays valid until expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, model.StatusResponse{Status: "logged_out"})
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.PublicUser
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]model.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.PublicUser
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PublicUser
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/user [get]
func (h *UserHandler) Me(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.svc.Current(c.Request.Context(), identity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.PublicUser
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/user [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), identity, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// DeleteMe godoc
// @Summary Delete the authenticated user's account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/user [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.svc.DeleteAccount(c.Request.Context(), identity); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "account deleted"})
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
