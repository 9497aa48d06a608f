package controller

import (
	"net/http"

	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// Check handles GET /health — liveness plus dependency status.
func (ctl *HealthController) Check(c *gin.Context) {
	status := gin.H{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}
	healthy := true

	if sqlDB, err := ctl.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status["database"] = "down"
		healthy = false
	}

	if err := ctl.Redis.Ping(c.Request.Context()).Err(); err != nil {
		status["redis"] = "down"
		healthy = false
	}

	if !healthy {
		status["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	util.Success(c, status)
}
