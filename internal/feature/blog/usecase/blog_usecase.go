// Package usecase implements the read side of the blog: the current user, profiles and posts.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	authusecase "blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/shared/identity"
)

// UserReader looks up users by id.
type UserReader interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// ProfileReader looks up the profile owned by a user.
type ProfileReader interface {
	FindByUserID(ctx context.Context, userID uint) (*authentity.Profile, error)
}

// PostRepository abstracts the persistence layer for posts.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PostRepository interface {
	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]entity.Post, error)

	// ListByAuthor returns the posts of one author, newest first.
	// Drafts are included only when includeDrafts is true.
	ListByAuthor(ctx context.Context, authorID uint, includeDrafts bool) ([]entity.Post, error)
}

// BlogUsecase provides the read operations exposed by the API.
type BlogUsecase struct {
	users    UserReader
	profiles ProfileReader
	posts    PostRepository
	timeout  time.Duration
}

// NewBlogUsecase creates a BlogUsecase. A non-positive timeout uses authusecase.DefaultStorageTimeout.
func NewBlogUsecase(users UserReader, profiles ProfileReader, posts PostRepository, timeout time.Duration) *BlogUsecase {
	if timeout <= 0 {
		timeout = authusecase.DefaultStorageTimeout
	}
	return &BlogUsecase{
		users:    users,
		profiles: profiles,
		posts:    posts,
		timeout:  timeout,
	}
}

// Me returns the authenticated caller, or nil for an anonymous caller.
func (u *BlogUsecase) Me(ctx context.Context) (*authentity.User, error) {
	id := identity.FromContext(ctx)
	if id == nil {
		return nil, nil
	}
	return u.User(ctx, id.UserID)
}

// User returns the user with the given id, or nil when it does not exist.
func (u *BlogUsecase) User(ctx context.Context, id uint) (*authentity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.users.FindByID(ctx, id)
	if errors.Is(err, authusecase.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	return user, nil
}

// Profile returns the profile owned by userID, or nil when there is none.
// Profiles are public and readable by any caller.
func (u *BlogUsecase) Profile(ctx context.Context, userID uint) (*authentity.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	profile, err := u.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, authusecase.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile of user %d: %w", userID, err)
	}
	return profile, nil
}

// Posts returns every published post, newest first.
func (u *BlogUsecase) Posts(ctx context.Context) ([]entity.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	posts, err := u.posts.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// PostsByAuthor returns the posts written by authorID.
// The author sees their drafts as well; everyone else sees published posts only.
func (u *BlogUsecase) PostsByAuthor(ctx context.Context, authorID uint) ([]entity.Post, error) {
	includeDrafts := identity.IsUser(ctx, authorID)

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	posts, err := u.posts.ListByAuthor(ctx, authorID, includeDrafts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts of user %d: %w", authorID, err)
	}
	return posts, nil
}
