package models

import "gorm.io/gorm"

// Module represents a section within a course
type Module struct {
	gorm.Model
	CourseID   uint     `json:"course_id" gorm:"index;not null"`
	Title      string   `json:"title"`
	OrderIndex int      `json:"order" gorm:"default:0"` // module order in course
	Lessons    []Lesson `json:"lessons,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
