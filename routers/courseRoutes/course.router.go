package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up public catalog routes and instructor course management
func SetupCourseRoutes(api fiber.Router) {
	courseGroup := api.Group("/courses")

	// Public catalog (published courses only)
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", controllers.GetCourseByID)

	// Course management; ownership is checked in the controllers
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteCourse)
}
