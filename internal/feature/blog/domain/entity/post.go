// Package entity defines the domain models for the blog feature.
package entity

import (
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
)

// Post is a blog entry written by a user.
// Only published posts appear in the public listing.
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Content   string `gorm:"type:text;not null"`
	Published bool   `gorm:"not null;default:false;index:idx_posts_published_created,priority:1"`

	AuthorID uint            `gorm:"index;not null"`
	Author   authentity.User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"index:idx_posts_published_created,priority:2"`
	UpdatedAt time.Time
}
