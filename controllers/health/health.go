package healthController

import (
	"lms/database"

	"github.com/gofiber/fiber/v2"
)

// Check reports liveness and whether the database answers a ping
func Check(c *fiber.Ctx) error {
	sqlDB, err := database.Database.Db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"db":     "disconnected",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"db":     "connected",
	})
}
