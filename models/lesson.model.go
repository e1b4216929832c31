package models

import "gorm.io/gorm"

// LessonType is the closed set of lesson content types
type LessonType string

const (
	LessonVideo LessonType = "VIDEO"
	LessonText  LessonType = "TEXT"
	LessonQuiz  LessonType = "QUIZ"
)

// Valid reports whether t is one of the known lesson types
func (t LessonType) Valid() bool {
	switch t {
	case LessonVideo, LessonText, LessonQuiz:
		return true
	}
	return false
}

// Lesson represents a single unit of content within a module
type Lesson struct {
	gorm.Model
	ModuleID   uint       `json:"module_id" gorm:"index;not null"`
	Title      string     `json:"title"`
	Type       LessonType `json:"type" gorm:"type:varchar(20);default:'TEXT'"`
	Content    string     `json:"content" gorm:"type:text"` // for TEXT and QUIZ types
	VideoURL   string     `json:"video_url"`                // for VIDEO type
	OrderIndex int        `json:"order" gorm:"default:0"`   // lesson order in module
}
