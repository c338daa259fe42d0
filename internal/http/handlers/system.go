package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "fleetledger/internal/config"
	"fleetledger/internal/repositories"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	if missing := repositories.MissingTables(c.Request.Context(), intconfig.DB); len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "missing_tables": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
