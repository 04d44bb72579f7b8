package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blogforge/backend/internal/model"
)

// Health godoc
// @Summary Service health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router / [get]
func Health(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		if err := pool.Ping(c.Request.Context()); err != nil {
			dbStatus = "disconnected"
		}

		c.JSON(http.StatusOK, model.HealthResponse{
			Status:    "healthy",
			Database:  dbStatus,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   "blogforge-backend",
		})
	}
}
