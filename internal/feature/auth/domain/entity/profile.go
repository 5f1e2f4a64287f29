package entity

import "time"

// Profile holds the public biography of a user.
// Each user owns exactly one profile, created together with the user at signup.
type Profile struct {
	ID  uint   `gorm:"primaryKey"`
	Bio string `gorm:"type:text;not null"`

	// UserID references the owning user.
	UserID uint `gorm:"uniqueIndex;not null"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
