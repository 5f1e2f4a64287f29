package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/usecase"
	platformdb "blog_backend/internal/platform/db"
)

// profileGorm is the GORM implementation of ProfileRepository.
type profileGorm struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileRepository creates a profile repository over db.
func NewProfileRepository(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

// Create inserts a profile. A second profile for the same user is rejected with
// usecase.ErrProfileAlreadyExists.
func (r *profileGorm) Create(ctx context.Context, p *entity.Profile) error {
	if p == nil {
		return errors.New("profile is nil")
	}
	// The owning user already exists; only the profile row is written.
	if err := platformdb.Conn(ctx, r.db).Omit("User").Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

// FindByUserID returns the profile owned by userID, or usecase.ErrProfileNotFound.
func (r *profileGorm) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := platformdb.Conn(ctx, r.db).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}
