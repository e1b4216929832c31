package models

import "gorm.io/gorm"

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price" gorm:"default:0"`
	Thumbnail    string   `json:"thumbnail"`
	IsPublished  bool     `json:"is_published" gorm:"default:false"`
	InstructorID uint     `json:"instructor_id" gorm:"index;not null"`
	Modules      []Module `json:"modules,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
