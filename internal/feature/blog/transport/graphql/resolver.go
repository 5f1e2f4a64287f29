// Package graphql resolves the blog queries and the User, Profile and Post object types.
package graphql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/graph-gophers/graphql-go"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/shared/apierror"
	"blog_backend/internal/shared/identity"
)

// BlogUsecase is the read side consumed by the resolvers.
type BlogUsecase interface {
	Me(ctx context.Context) (*authentity.User, error)
	User(ctx context.Context, id uint) (*authentity.User, error)
	Profile(ctx context.Context, userID uint) (*authentity.Profile, error)
	Posts(ctx context.Context) ([]entity.Post, error)
	PostsByAuthor(ctx context.Context, authorID uint) ([]entity.Post, error)
}

// ProfileArgs are the arguments of Query.profile.
type ProfileArgs struct {
	UserID graphql.ID
}

// QueryResolver resolves the me, profile and posts queries.
type QueryResolver struct {
	blog BlogUsecase
}

// NewQueryResolver creates a QueryResolver.
func NewQueryResolver(blog BlogUsecase) *QueryResolver {
	return &QueryResolver{blog: blog}
}

// Me returns null for anonymous callers.
func (r *QueryResolver) Me(ctx context.Context) (*UserResolver, error) {
	u, err := r.blog.Me(ctx)
	if err != nil {
		return nil, apierror.Mask(ctx, "me", err)
	}
	return newUserResolver(r.blog, u), nil
}

// Profile returns the public profile of userId, or null when it has none.
func (r *QueryResolver) Profile(ctx context.Context, args ProfileArgs) (*ProfileResolver, error) {
	userID, err := parseID(args.UserID)
	if err != nil {
		return nil, err
	}
	p, err := r.blog.Profile(ctx, userID)
	if err != nil {
		return nil, apierror.Mask(ctx, "profile", err)
	}
	if p == nil {
		return nil, nil
	}
	return &ProfileResolver{blog: r.blog, profile: p}, nil
}

// Posts returns published posts, newest first.
func (r *QueryResolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := r.blog.Posts(ctx)
	if err != nil {
		return nil, apierror.Mask(ctx, "posts", err)
	}
	return newPostResolvers(r.blog, posts), nil
}

func newUserResolver(blog BlogUsecase, u *authentity.User) *UserResolver {
	if u == nil {
		return nil
	}
	return &UserResolver{blog: blog, user: u}
}

func newPostResolvers(blog BlogUsecase, posts []entity.Post) []*PostResolver {
	out := make([]*PostResolver, 0, len(posts))
	for i := range posts {
		out = append(out, &PostResolver{blog: blog, post: &posts[i]})
	}
	return out
}

// UserResolver resolves the User type.
type UserResolver struct {
	blog BlogUsecase
	user *authentity.User
}

func (u *UserResolver) ID() graphql.ID { return formatID(u.user.ID) }
func (u *UserResolver) Name() string   { return u.user.Name }
func (u *UserResolver) Email() string  { return u.user.Email }

// Profile returns the user's profile.
func (u *UserResolver) Profile(ctx context.Context) (*ProfileResolver, error) {
	p, err := u.blog.Profile(ctx, u.user.ID)
	if err != nil {
		return nil, apierror.Mask(ctx, "User.profile", err)
	}
	if p == nil {
		return nil, nil
	}
	return &ProfileResolver{blog: u.blog, profile: p}, nil
}

// Posts includes drafts only when the caller is this user.
func (u *UserResolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := u.blog.PostsByAuthor(ctx, u.user.ID)
	if err != nil {
		return nil, apierror.Mask(ctx, "User.posts", err)
	}
	return newPostResolvers(u.blog, posts), nil
}

// ProfileResolver resolves the Profile type.
type ProfileResolver struct {
	blog    BlogUsecase
	profile *authentity.Profile
}

func (p *ProfileResolver) ID() graphql.ID { return formatID(p.profile.ID) }
func (p *ProfileResolver) Bio() string    { return p.profile.Bio }

// IsMyProfile reports whether the caller owns this profile.
func (p *ProfileResolver) IsMyProfile(ctx context.Context) bool {
	return identity.IsUser(ctx, p.profile.UserID)
}

func (p *ProfileResolver) User(ctx context.Context) (*UserResolver, error) {
	u, err := p.blog.User(ctx, p.profile.UserID)
	if err != nil {
		return nil, apierror.Mask(ctx, "Profile.user", err)
	}
	return newUserResolver(p.blog, u), nil
}

// PostResolver resolves the Post type.
type PostResolver struct {
	blog BlogUsecase
	post *entity.Post
}

func (p *PostResolver) ID() graphql.ID    { return formatID(p.post.ID) }
func (p *PostResolver) Title() string     { return p.post.Title }
func (p *PostResolver) Content() string   { return p.post.Content }
func (p *PostResolver) Published() bool   { return p.post.Published }
func (p *PostResolver) CreatedAt() string { return p.post.CreatedAt.UTC().Format(time.RFC3339) }

func (p *PostResolver) User(ctx context.Context) (*UserResolver, error) {
	u, err := p.blog.User(ctx, p.post.AuthorID)
	if err != nil {
		return nil, apierror.Mask(ctx, "Post.user", err)
	}
	return newUserResolver(p.blog, u), nil
}

func formatID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}

func parseID(id graphql.ID) (uint, error) {
	n, err := strconv.ParseUint(string(id), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", string(id))
	}
	return uint(n), nil
}
