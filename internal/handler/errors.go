package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogforge/backend/internal/service"
)

// writeServiceError maps service sentinels onto HTTP responses. Anything not
// in the taxonomy is an internal fault and surfaces as a bare 500.
func writeServiceError(c *gin.Context, err error) {
	switch err {
	case service.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case service.ErrInvalidCredentials:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case service.ErrForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case service.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case service.ErrConflict:
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
