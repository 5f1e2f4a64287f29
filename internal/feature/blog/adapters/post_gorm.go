// Package adapters はblogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
	platformdb "blog_backend/internal/platform/db"
)

// postGorm はPostRepositoryインターフェースのGORM実装です。
type postGorm struct {
	db *gorm.DB
}

var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostRepository は指定されたDB接続でpostGormリポジトリの新しいインスタンスを生成します。
func NewPostRepository(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// ListPublished は公開済みの投稿を作成日時の降順で返します。
// 作成日時が同じ場合はIDの降順で並べます。
func (r *postGorm) ListPublished(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	if err := platformdb.Conn(ctx, r.db).
		Where("published = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByAuthor は指定ユーザーの投稿を作成日時の降順で返します。
func (r *postGorm) ListByAuthor(ctx context.Context, authorID uint, includeDrafts bool) ([]entity.Post, error) {
	q := platformdb.Conn(ctx, r.db).Where("author_id = ?", authorID)
	if !includeDrafts {
		q = q.Where("published = ?", true)
	}

	var posts []entity.Post
	if err := q.Order("created_at DESC").Order("id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
