// Package client is a typed API client for the LMS server. A Client owns
// an explicit session established by Login or Register and cleared by
// Logout; calls that need one fail with ErrNoSession instead of reaching
// the network.
package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNoSession is returned by calls that require authentication when
	// no session is active
	ErrNoSession = errors.New("client: no active session")

	// ErrNotEnrolled gates course playback for users without an enrollment
	ErrNotEnrolled = errors.New("client: not enrolled in this course")
)

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Session holds the authenticated user and their token
type Session struct {
	Token string
	User  User
}

// Client talks to the LMS API
type Client struct {
	http    *resty.Client
	session *Session
}

// New creates a Client for the given base URL, e.g. "http://localhost:5001"
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/") + "/api").
			SetTimeout(10 * time.Second),
	}
}

// Session returns the active session, or nil when logged out
func (c *Client) Session() *Session {
	return c.session
}

// Logout clears the session
func (c *Client) Logout() {
	c.session = nil
}

// envelope is the server's {status, message, data} response wrapper
type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// call performs a request and unwraps the response envelope
func call[T any](c *Client, method, path string, body any, authed bool) (T, error) {
	var result envelope[T]
	var apiErr envelope[map[string]string]

	req := c.http.R().SetResult(&result).SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if authed {
		if c.session == nil {
			var zero T
			return zero, ErrNoSession
		}
		req.SetAuthToken(c.session.Token)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		var zero T
		return zero, err
	}
	if resp.IsError() {
		var zero T
		return zero, &APIError{StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	return result.Data, nil
}

type authData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Register creates an account and establishes a session. Role may be
// empty, the server defaults it to LEARNER.
func (c *Client) Register(email, password, name, role string) (*Session, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	if role != "" {
		body["role"] = role
	}

	data, err := call[authData](c, resty.MethodPost, "/auth/register", body, false)
	if err != nil {
		return nil, err
	}

	c.session = &Session{Token: data.Token, User: data.User}
	return c.session, nil
}

// Login authenticates and establishes a session
func (c *Client) Login(email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	data, err := call[authData](c, resty.MethodPost, "/auth/login", body, false)
	if err != nil {
		return nil, err
	}

	c.session = &Session{Token: data.Token, User: data.User}
	return c.session, nil
}

// Courses fetches the published course catalog
func (c *Client) Courses() ([]Course, error) {
	data, err := call[struct {
		Courses []Course `json:"courses"`
	}](c, resty.MethodGet, "/courses", nil, false)
	if err != nil {
		return nil, err
	}
	return data.Courses, nil
}

// Course fetches one course with its nested modules and lessons
func (c *Client) Course(id uint) (*Course, error) {
	data, err := call[Course](c, resty.MethodGet, fmt.Sprintf("/courses/%d", id), nil, false)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// CreateCourse submits a new course. The same minimum lengths the server
// enforces are checked here first so a form can surface them without a
// round trip.
func (c *Client) CreateCourse(req CreateCourseRequest) (*Course, error) {
	if len(strings.TrimSpace(req.Title)) < 5 {
		return nil, errors.New("client: title must be at least 5 characters long")
	}
	if len(strings.TrimSpace(req.Description)) < 20 {
		return nil, errors.New("client: description must be at least 20 characters long")
	}

	data, err := call[Course](c, resty.MethodPost, "/courses", req, true)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Enroll enrolls the current user in a course
func (c *Client) Enroll(courseID uint) (*Enrollment, error) {
	data, err := call[Enrollment](c, resty.MethodPost, "/enrollments", map[string]uint{"courseId": courseID}, true)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// MyEnrollments fetches the current user's enrollments with their courses
func (c *Client) MyEnrollments() ([]Enrollment, error) {
	data, err := call[struct {
		Enrollments []Enrollment `json:"enrollments"`
	}](c, resty.MethodGet, "/enrollments/my", nil, true)
	if err != nil {
		return nil, err
	}
	return data.Enrollments, nil
}

// CompleteLesson marks a lesson finished within a course enrollment.
// Safe to repeat, the server stores each lesson at most once.
func (c *Client) CompleteLesson(courseID, lessonID uint) (*Enrollment, error) {
	body := map[string]uint{"courseId": courseID, "lessonId": lessonID}

	data, err := call[Enrollment](c, resty.MethodPut, "/enrollments/progress", body, true)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Profile fetches the current user's profile
func (c *Client) Profile() (*User, error) {
	data, err := call[User](c, resty.MethodGet, "/users/profile", nil, true)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// UpdateProfile updates the supplied profile fields
func (c *Client) UpdateProfile(req UpdateProfileRequest) (*User, error) {
	data, err := call[User](c, resty.MethodPut, "/users/profile", req, true)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Stats fetches the admin dashboard aggregates
func (c *Client) Stats() (*Stats, error) {
	data, err := call[Stats](c, resty.MethodGet, "/admin/stats", nil, true)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Users fetches the full user list (admin only)
func (c *Client) Users() ([]User, error) {
	data, err := call[struct {
		Users []User `json:"users"`
	}](c, resty.MethodGet, "/admin/users", nil, true)
	if err != nil {
		return nil, err
	}
	return data.Users, nil
}

// UpdateUserRole changes a user's role (admin only)
func (c *Client) UpdateUserRole(userID uint, role string) (*User, error) {
	body := map[string]string{"role": role}

	data, err := call[User](c, resty.MethodPut, fmt.Sprintf("/admin/users/%d/role", userID), body, true)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Upload sends one file and returns its public URL
func (c *Client) Upload(path string) (*UploadResult, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}

	var result envelope[UploadResult]
	var apiErr envelope[map[string]string]

	resp, err := c.http.R().
		SetResult(&result).
		SetError(&apiErr).
		SetAuthToken(c.session.Token).
		SetFile("file", path).
		Post("/upload")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	return &result.Data, nil
}
