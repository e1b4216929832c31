package enrollmentController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// EnrollmentWithProgress represents an enrollment with its ordered
// completed lesson ids
type EnrollmentWithProgress struct {
	models.Enrollment
	CompletedLessons []uint `json:"completed_lessons"`
}

// completedLessonIDs returns the lesson ids finished within an
// enrollment, in completion order
func completedLessonIDs(enrollmentID uint) []uint {
	var completions []models.LessonCompletion
	database.Database.Db.Where("enrollment_id = ?", enrollmentID).Order("id asc").Find(&completions)

	ids := make([]uint, len(completions))
	for i, completion := range completions {
		ids[i] = completion.LessonID
	}
	return ids
}

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Retrieve validated course ID
	reqData, ok := c.Locals("validatedEnrollment").(*struct {
		CourseID uint `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if course exists and is published
	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_published = ?", reqData.CourseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Insert-if-absent on (user, course). The unique index decides who
	// wins under concurrent requests; zero affected rows means an
	// enrollment already exists.
	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: reqData.CourseID,
	}

	result := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(&enrollment)

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", EnrollmentWithProgress{
		Enrollment:       enrollment,
		CompletedLessons: []uint{},
	})
}

func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Fetch the caller's enrollments with embedded courses
	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Course").Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithProgress, len(enrollments))
	for i, enrollment := range enrollments {
		result[i] = EnrollmentWithProgress{
			Enrollment:       enrollment,
			CompletedLessons: completedLessonIDs(enrollment.ID),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
	})
}

func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Retrieve validated course and lesson IDs
	reqData, ok := c.Locals("validatedProgress").(*struct {
		CourseID uint `json:"courseId"`
		LessonID uint `json:"lessonId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if user is enrolled in the course
	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not enrolled in this course!", nil)
	}

	// Conditional insert keeps repeat calls idempotent; the unique index
	// on (enrollment, lesson) closes the double-submit race.
	completion := models.LessonCompletion{
		EnrollmentID: enrollment.ID,
		LessonID:     reqData.LessonID,
	}

	result := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}, {Name: "lesson_id"}},
		DoNothing: true,
	}).Create(&completion)

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", EnrollmentWithProgress{
		Enrollment:       enrollment,
		CompletedLessons: completedLessonIDs(enrollment.ID),
	})
}
