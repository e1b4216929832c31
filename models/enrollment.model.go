package models

import "gorm.io/gorm"

// Enrollment tracks a user's access to a course. The composite unique
// index is what makes concurrent duplicate enrolls impossible; the
// controller inserts with ON CONFLICT DO NOTHING and treats zero affected
// rows as an already-enrolled conflict.
type Enrollment struct {
	gorm.Model
	UserID      uint               `json:"user_id" gorm:"uniqueIndex:idx_enroll_user_course;not null"`
	CourseID    uint               `json:"course_id" gorm:"uniqueIndex:idx_enroll_user_course;not null"`
	Course      Course             `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Completions []LessonCompletion `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// LessonCompletion records that one lesson was finished within an
// enrollment. The unique index keeps each lesson id at most once per
// enrollment, so repeated progress calls stay idempotent.
type LessonCompletion struct {
	gorm.Model
	EnrollmentID uint `json:"enrollment_id" gorm:"uniqueIndex:idx_completion_enroll_lesson;not null"`
	LessonID     uint `json:"lesson_id" gorm:"uniqueIndex:idx_completion_enroll_lesson;not null"`
}
