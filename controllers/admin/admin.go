package adminController

import (
	"strconv"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var usersCount, coursesCount, enrollmentsCount int64
	db.Model(&models.User{}).Count(&usersCount)
	db.Model(&models.Course{}).Count(&coursesCount)
	db.Model(&models.Enrollment{}).Count(&enrollmentsCount)

	// Signups since the start of the current month
	var newUsersThisMonth int64
	db.Model(&models.User{}).Where("created_at >= ?", now.BeginningOfMonth()).Count(&newUsersThisMonth)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"users_count":          usersCount,
		"courses_count":        coursesCount,
		"enrollments_count":    enrollmentsCount,
		"new_users_this_month": newUsersThisMonth,
	})
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list fetched successfully!", fiber.Map{
		"users": users,
	})
}

func UpdateUserRole(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	// Retrieve validated role
	reqData, ok := c.Locals("validatedRole").(*struct {
		Role string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = models.Role(reqData.Role)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", user)
}
