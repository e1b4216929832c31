package enrollmentRoutes

import (
	controllers "lms/controllers/enrollment"
	"lms/middleware"
	validators "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment and progress routes
func SetupEnrollmentRoutes(api fiber.Router) {
	enrollmentGroup := api.Group("/enrollments", middleware.JWTMiddleware)

	enrollmentGroup.Post("/", validators.Enroll(), controllers.EnrollInCourse)
	enrollmentGroup.Get("/my", controllers.GetMyEnrollments)
	enrollmentGroup.Put("/progress", validators.Progress(), controllers.UpdateProgress)
}
