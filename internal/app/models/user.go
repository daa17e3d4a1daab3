package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"teacher@coursehub.io"`
	Password    string     `json:"-" db:"password"` // hashed, excluded from JSON
	FirstName   string     `json:"firstName" db:"first_name" example:"Jane"`
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`
	Role        Role       `json:"role" db:"role" example:"TEACHER"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
