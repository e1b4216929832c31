package contentRoutes

import (
	controllers "lms/controllers/content"
	"lms/middleware"
	validators "lms/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up module and lesson management routes
func SetupContentRoutes(api fiber.Router) {
	contentGroup := api.Group("/content", middleware.JWTMiddleware)

	// Modules
	contentGroup.Post("/modules", validators.CreateModule(), controllers.CreateModule)
	contentGroup.Put("/modules/:id", validators.UpdateModule(), controllers.UpdateModule)
	contentGroup.Delete("/modules/:id", controllers.DeleteModule)

	// Lessons
	contentGroup.Post("/lessons", validators.CreateLesson(), controllers.CreateLesson)
	contentGroup.Put("/lessons/:id", validators.UpdateLesson(), controllers.UpdateLesson)
	contentGroup.Delete("/lessons/:id", controllers.DeleteLesson)
}
