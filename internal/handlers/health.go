package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-portal/internal/database"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB        *gorm.DB
	AIEnabled bool
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.DB); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ai": h.AIEnabled})
}
