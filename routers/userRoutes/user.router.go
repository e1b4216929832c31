package userRoutes

import (
	controllers "lms/controllers/user"
	"lms/middleware"
	validators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile routes
func SetupUserRoutes(api fiber.Router) {
	userGroup := api.Group("/users", middleware.JWTMiddleware)

	userGroup.Get("/profile", controllers.GetProfile)
	userGroup.Put("/profile", validators.UpdateProfile(), controllers.UpdateProfile)
}
