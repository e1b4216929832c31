package contentController

import (
	"strconv"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// lessonCourse walks lesson -> module -> course for the ownership check
func lessonCourse(lesson models.Lesson) (models.Course, error) {
	var module models.Module
	if err := database.Database.Db.First(&module, lesson.ModuleID).Error; err != nil {
		return models.Course{}, err
	}

	var course models.Course
	if err := database.Database.Db.First(&course, module.CourseID).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func CreateLesson(c *fiber.Ctx) error {
	// Retrieve validated request data
	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title    string `json:"title"`
		ModuleID uint   `json:"moduleId"`
		Type     string `json:"type"`
		Content  string `json:"content"`
		VideoURL string `json:"videoUrl"`
		Order    int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Verify the parent module exists
	var module models.Module
	if err := database.Database.Db.First(&module, reqData.ModuleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// Ownership is transitive via the module's course
	var course models.Course
	if err := database.Database.Db.First(&course, module.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canEditCourse(c, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	// Create new lesson
	lesson := models.Lesson{
		ModuleID:   reqData.ModuleID,
		Title:      reqData.Title,
		Type:       models.LessonType(reqData.Type),
		Content:    reqData.Content,
		VideoURL:   reqData.VideoURL,
		OrderIndex: reqData.Order,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	// Check if lesson exists
	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	course, err := lessonCourse(lesson)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canEditCourse(c, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	// Retrieve validated partial update
	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title    *string `json:"title"`
		Type     *string `json:"type"`
		Content  *string `json:"content"`
		VideoURL *string `json:"videoUrl"`
		Order    *int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.Type != nil {
		lesson.Type = models.LessonType(*reqData.Type)
	}
	if reqData.Content != nil {
		lesson.Content = *reqData.Content
	}
	if reqData.VideoURL != nil {
		lesson.VideoURL = *reqData.VideoURL
	}
	if reqData.Order != nil {
		lesson.OrderIndex = *reqData.Order
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	course, err := lessonCourse(lesson)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canEditCourse(c, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	if err := database.Database.Db.Delete(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
