package client

import "time"

// Value types mirroring the API's JSON bodies. Nested course content is
// fully typed down to the lesson level.

type User struct {
	ID        uint      `json:"ID"`
	CreatedAt time.Time `json:"CreatedAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
}

type Course struct {
	ID             uint      `json:"ID"`
	CreatedAt      time.Time `json:"CreatedAt"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	Thumbnail      string    `json:"thumbnail"`
	IsPublished    bool      `json:"is_published"`
	InstructorID   uint      `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	Modules        []Module  `json:"modules"`
}

type Module struct {
	ID       uint     `json:"ID"`
	CourseID uint     `json:"course_id"`
	Title    string   `json:"title"`
	Order    int      `json:"order"`
	Lessons  []Lesson `json:"lessons"`
}

type Lesson struct {
	ID       uint   `json:"ID"`
	ModuleID uint   `json:"module_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
	Order    int    `json:"order"`
}

type Enrollment struct {
	ID               uint   `json:"ID"`
	UserID           uint   `json:"user_id"`
	CourseID         uint   `json:"course_id"`
	Course           Course `json:"course"`
	CompletedLessons []uint `json:"completed_lessons"`
}

type Stats struct {
	UsersCount        int64 `json:"users_count"`
	CoursesCount      int64 `json:"courses_count"`
	EnrollmentsCount  int64 `json:"enrollments_count"`
	NewUsersThisMonth int64 `json:"new_users_this_month"`
}

type UploadResult struct {
	FileURL      string `json:"fileUrl"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
}

// CreateCourseRequest is the payload for creating a course
type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

// UpdateProfileRequest carries optional profile changes
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Bio   *string `json:"bio,omitempty"`
	Phone *string `json:"phone,omitempty"`
}
