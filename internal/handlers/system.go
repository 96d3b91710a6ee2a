package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/services"
)

// GetSystemLogs handles GET /api/system-logs (admin only) — the last 100
// operational log lines, newest first.
func GetSystemLogs(c *gin.Context) {
	logs, err := services.RecentSystemLogs(100)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// HealthCheck reports database and redis connectivity.
func HealthCheck(c *gin.Context) {
	dbStatus := "ok"
	redisStatus := "ok"

	sqlDB, err := database.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "error"
	}

	if database.Redis != nil {
		if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
			redisStatus = "error"
		}
	} else {
		redisStatus = "not configured"
	}

	status := "ok"
	if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"checks": gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
