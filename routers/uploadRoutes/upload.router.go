package uploadRoutes

import (
	controllers "lms/controllers/upload"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes sets up the file upload route
func SetupUploadRoutes(api fiber.Router) {
	api.Post("/upload", middleware.JWTMiddleware, controllers.UploadFile)
}
