package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/caffeinepub/supply-chain-management-app/internal/infra"
	"github.com/caffeinepub/supply-chain-management-app/internal/worker"
)

// Health reports DB and Redis connectivity plus the mail circuit breaker
// state and the notification dead-letter depth. Mail and DLQ figures are
// informational only and never degrade the overall status: the API works
// fine without email.
func Health(db *gorm.DB, rdb *redis.Client, mailCB *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		dlqDepth, err := worker.DLQLength(ctx, rdb, worker.QueueNotifications)
		if err != nil {
			dlqDepth = -1
		}

		c.JSON(status, gin.H{
			"ok":                status == http.StatusOK,
			"db":                dbStatus,
			"redis":             redisStatus,
			"mail":              mailCB.State().String(),
			"notifications_dlq": dlqDepth,
		})
	}
}
