package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 3 * time.Second

// Health responde 200 quando Postgres e Redis aceitam ping, 503 caso
// contrário. Não expõe credenciais nem detalhes internos.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		deps := gin.H{"db": "ok", "redis": "ok"}
		healthy := true

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			deps["db"] = "indisponível"
			healthy = false
		}
		if rdb.Ping(ctx).Err() != nil {
			deps["redis"] = "indisponível"
			healthy = false
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"ok": healthy, "deps": deps})
	}
}
