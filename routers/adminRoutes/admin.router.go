package adminRoutes

import (
	controllers "lms/controllers/admin"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin panel routes, gated to the ADMIN role
func SetupAdminRoutes(api fiber.Router) {
	adminGroup := api.Group("/admin", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))

	adminGroup.Get("/stats", controllers.GetStats)
	adminGroup.Get("/users", controllers.GetAllUsers)
	adminGroup.Put("/users/:id/role", validators.UpdateRole(), controllers.UpdateUserRole)
}
