package models

// User represents the users table in database.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"unique;not null" json:"email"`
	Username       string `gorm:"unique;not null" json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsActive       bool   `gorm:"not null" json:"is_active"`
	Role           string `gorm:"not null" json:"role"`
}
