package client_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lms/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubServer mimics the API's {status, message, data} envelope for a
// fixed catalog: course 1 with two lessons, the test user enrolled with
// lesson 10 already done.
type stubServer struct {
	*httptest.Server
	progressCalls atomic.Int64
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()

	s := &stubServer{}
	mux := http.NewServeMux()

	ok := func(w http.ResponseWriter, data any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": true, "message": "Success!", "data": data})
	}
	fail := func(w http.ResponseWriter, code int, message string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]any{"status": false, "message": message, "data": nil})
	}

	course := map[string]any{
		"ID": 1, "title": "Intro to Go", "is_published": true,
		"modules": []map[string]any{
			{"ID": 5, "course_id": 1, "title": "Basics", "order": 0, "lessons": []map[string]any{
				{"ID": 10, "module_id": 5, "title": "Hello", "type": "TEXT", "order": 0},
				{"ID": 11, "module_id": 5, "title": "Types", "type": "VIDEO", "order": 1},
			}},
		},
	}

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret123" {
			fail(w, http.StatusBadRequest, "Invalid credentials!")
			return
		}
		ok(w, map[string]any{
			"token": "test-token",
			"user":  map[string]any{"ID": 7, "email": body["email"], "name": "Jo", "role": "LEARNER"},
		})
	})
	mux.HandleFunc("GET /api/courses", func(w http.ResponseWriter, r *http.Request) {
		ok(w, map[string]any{"courses": []any{course}})
	})
	mux.HandleFunc("GET /api/courses/1", func(w http.ResponseWriter, r *http.Request) {
		ok(w, course)
	})
	mux.HandleFunc("GET /api/courses/2", func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusNotFound, "Course not found!")
	})
	mux.HandleFunc("GET /api/courses/3", func(w http.ResponseWriter, r *http.Request) {
		ok(w, map[string]any{"ID": 3, "title": "Advanced Go", "is_published": true, "modules": []any{}})
	})
	mux.HandleFunc("GET /api/enrollments/my", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			fail(w, http.StatusUnauthorized, "Unauthorized!")
			return
		}
		ok(w, map[string]any{"enrollments": []map[string]any{
			{"ID": 3, "user_id": 7, "course_id": 1, "completed_lessons": []uint{10}},
		}})
	})
	mux.HandleFunc("PUT /api/enrollments/progress", func(w http.ResponseWriter, r *http.Request) {
		s.progressCalls.Add(1)
		ok(w, map[string]any{"ID": 3, "user_id": 7, "course_id": 1, "completed_lessons": []uint{10, 11}})
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func login(t *testing.T, c *client.Client) {
	t.Helper()
	_, err := c.Login("jo@example.com", "secret123")
	require.NoError(t, err)
}

func TestLoginEstablishesSession(t *testing.T) {
	srv := newStubServer(t)
	c := client.New(srv.URL)

	require.Nil(t, c.Session())

	session, err := c.Login("jo@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "test-token", session.Token)
	assert.Equal(t, uint(7), session.User.ID)
	assert.Equal(t, "LEARNER", session.User.Role)
	assert.Same(t, session, c.Session())

	c.Logout()
	assert.Nil(t, c.Session())
}

func TestLoginFailureSurfacesAPIError(t *testing.T) {
	srv := newStubServer(t)
	c := client.New(srv.URL)

	_, err := c.Login("jo@example.com", "wrong")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials!", apiErr.Message)
	assert.Nil(t, c.Session())
}

func TestAuthedCallWithoutSession(t *testing.T) {
	srv := newStubServer(t)
	c := client.New(srv.URL)

	_, err := c.MyEnrollments()
	assert.ErrorIs(t, err, client.ErrNoSession)

	_, err = c.Profile()
	assert.ErrorIs(t, err, client.ErrNoSession)
}

func TestCoursesUnwrapEnvelope(t *testing.T) {
	srv := newStubServer(t)
	c := client.New(srv.URL)

	courses, err := c.Courses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Intro to Go", courses[0].Title)
	require.Len(t, courses[0].Modules, 1)
	assert.Len(t, courses[0].Modules[0].Lessons, 2)
}

func TestCreateCourseValidatesLocally(t *testing.T) {
	srv := newStubServer(t)
	c := client.New(srv.URL)
	login(t, c)

	_, err := c.CreateCourse(client.CreateCourseRequest{Title: "Go", Description: "A long enough description here."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	_, err = c.CreateCourse(client.CreateCourseRequest{Title: "Intro to Go", Description: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestOpenPlayerNotEnrolled(t *testing.T) {
	srv := newStubServer(t)
	c := client.New(srv.URL)

	_, err := c.OpenPlayer(1)
	assert.ErrorIs(t, err, client.ErrNoSession)

	login(t, c)

	_, err = c.OpenPlayer(2)
	var apiErr *client.APIError
	require.Error(t, err)
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	// course 3 exists but the user has no enrollment for it
	_, err = c.OpenPlayer(3)
	assert.ErrorIs(t, err, client.ErrNotEnrolled)
}

func TestPlayerSkipsAlreadyCompletedLessons(t *testing.T) {
	srv := newStubServer(t)
	c := client.New(srv.URL)
	login(t, c)

	player, err := c.OpenPlayer(1)
	require.NoError(t, err)

	assert.True(t, player.Completed(10))
	assert.False(t, player.Completed(11))

	completed, total := player.Progress()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, total)

	// lesson 10 is already done, marking it again stays local
	require.NoError(t, player.MarkComplete(10))
	assert.Equal(t, int64(0), srv.progressCalls.Load())

	require.NoError(t, player.MarkComplete(11))
	assert.Equal(t, int64(1), srv.progressCalls.Load())
	assert.True(t, player.Completed(11))

	completed, total = player.Progress()
	assert.Equal(t, 2, completed)
	assert.Equal(t, 2, total)
}

func TestPlayerLessonSelection(t *testing.T) {
	srv := newStubServer(t)
	c := client.New(srv.URL)
	login(t, c)

	player, err := c.OpenPlayer(1)
	require.NoError(t, err)

	require.Nil(t, player.ActiveLesson())
	require.NoError(t, player.SelectLesson(11))
	require.NotNil(t, player.ActiveLesson())
	assert.Equal(t, "Types", player.ActiveLesson().Title)

	assert.Error(t, player.SelectLesson(99))
}
