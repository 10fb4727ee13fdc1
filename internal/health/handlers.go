package health

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Handlers serves liveness and dependency-status endpoints.
type Handlers struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

// Root GET / — plain liveness probe.
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.SendString("constancias backend up")
}

// JSON GET /health/json — dependency status report.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	var db DBPinger
	if h.DB != nil {
		if sqlDB, err := h.DB.DB(); err == nil {
			db = sqlDB
		}
	}
	return c.JSON(Collect(c.Context(), db, h.Rdb))
}
