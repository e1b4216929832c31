package models

import "gorm.io/gorm"

// Role is the closed set of account roles
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleInstructor Role = "INSTRUCTOR"
	RoleLearner    Role = "LEARNER"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleLearner:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"default:''"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     Role   `json:"role" gorm:"type:varchar(20);default:'LEARNER'"`
	Bio      string `json:"bio" gorm:"default:''"`
	Phone    string `json:"phone" gorm:"default:''"`
}
