package enrollmentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	enrollmentRoutes "lms/routers/enrollmentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{Port: "0", JWTKey: "test-secret", SaltRound: bcrypt.MinCost}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.NewReplacer("/", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Course{}, &models.Module{},
		&models.Lesson{}, &models.Enrollment{}, &models.LessonCompletion{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	enrollmentRoutes.SetupEnrollmentRoutes(app.Group("/api"))
	return app
}

func createUser(t *testing.T, email string, role models.Role) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: "User " + email, Email: email, Password: string(hash), Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

func createPublishedCourse(t *testing.T) models.Course {
	t.Helper()

	instructor, _ := createUser(t, fmt.Sprintf("inst-%s@x.com", strings.NewReplacer("/", "-").Replace(t.Name())), models.RoleInstructor)
	course := models.Course{
		Title:        "Intro to Testing",
		Description:  "A course description longer than twenty characters.",
		Category:     "engineering",
		IsPublished:  true,
		InstructorID: instructor.ID,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp.StatusCode, parsed
}

func TestEnrollTwiceConflicts(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "learner@x.com", models.RoleLearner)
	course := createPublishedCourse(t)

	payload := fiber.Map{"courseId": course.ID}

	code, body := doRequest(t, app, http.MethodPost, "/api/enrollments", token, payload)
	require.Equal(t, http.StatusCreated, code)
	data := body["data"].(map[string]any)
	assert.Empty(t, data["completed_lessons"])

	code, _ = doRequest(t, app, http.MethodPost, "/api/enrollments", token, payload)
	assert.Equal(t, http.StatusConflict, code)
}

func TestEnrollUnpublishedCourse(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "inst@x.com", models.RoleInstructor)
	_, token := createUser(t, "learner@x.com", models.RoleLearner)

	course := models.Course{
		Title:        "Unpublished draft",
		Description:  "A course description longer than twenty characters.",
		Category:     "engineering",
		InstructorID: instructor.ID,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	code, _ := doRequest(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{"courseId": course.ID})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEnrollRequiresAuth(t *testing.T) {
	app := setupApp(t)
	course := createPublishedCourse(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/enrollments", "", fiber.Map{"courseId": course.ID})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProgressNotEnrolled(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "learner@x.com", models.RoleLearner)
	course := createPublishedCourse(t)

	code, _ := doRequest(t, app, http.MethodPut, "/api/enrollments/progress", token, fiber.Map{
		"courseId": course.ID,
		"lessonId": 1,
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestProgressIsIdempotent(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "learner@x.com", models.RoleLearner)
	course := createPublishedCourse(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{"courseId": course.ID})
	require.Equal(t, http.StatusCreated, code)

	progress := fiber.Map{"courseId": course.ID, "lessonId": 7}

	// Marking the same lesson complete twice keeps exactly one occurrence
	code, body := doRequest(t, app, http.MethodPut, "/api/enrollments/progress", token, progress)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["data"].(map[string]any)["completed_lessons"].([]any), 1)

	code, body = doRequest(t, app, http.MethodPut, "/api/enrollments/progress", token, progress)
	require.Equal(t, http.StatusOK, code)

	completed := body["data"].(map[string]any)["completed_lessons"].([]any)
	require.Len(t, completed, 1)
	assert.Equal(t, float64(7), completed[0])
}

func TestMyEnrollmentsEmbedCourseAndProgress(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "learner@x.com", models.RoleLearner)
	course := createPublishedCourse(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{"courseId": course.ID})
	require.Equal(t, http.StatusCreated, code)

	for _, lessonID := range []uint{3, 5, 3} {
		code, _ = doRequest(t, app, http.MethodPut, "/api/enrollments/progress", token, fiber.Map{
			"courseId": course.ID,
			"lessonId": lessonID,
		})
		require.Equal(t, http.StatusOK, code)
	}

	code, body := doRequest(t, app, http.MethodGet, "/api/enrollments/my", token, nil)
	require.Equal(t, http.StatusOK, code)

	enrollments := body["data"].(map[string]any)["enrollments"].([]any)
	require.Len(t, enrollments, 1)

	enrollment := enrollments[0].(map[string]any)
	assert.Equal(t, course.Title, enrollment["course"].(map[string]any)["title"])

	// Completion order is preserved and the repeat mark was dropped
	completed := enrollment["completed_lessons"].([]any)
	require.Len(t, completed, 2)
	assert.Equal(t, float64(3), completed[0])
	assert.Equal(t, float64(5), completed[1])
}

func TestMyEnrollmentsScopedToCaller(t *testing.T) {
	app := setupApp(t)
	_, tokenA := createUser(t, "a@x.com", models.RoleLearner)
	_, tokenB := createUser(t, "b@x.com", models.RoleLearner)
	course := createPublishedCourse(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/enrollments", tokenA, fiber.Map{"courseId": course.ID})
	require.Equal(t, http.StatusCreated, code)

	code, body := doRequest(t, app, http.MethodGet, "/api/enrollments/my", tokenB, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["data"].(map[string]any)["enrollments"])
}
