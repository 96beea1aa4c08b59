package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	UpsertProfile(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// userRepositoryImpl is the GORM implementation of UserRepository
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

// Upsert creates the user or overwrites the verification code of an
// existing one. Signing up again always replaces the stored code.
func (r *userRepositoryImpl) Upsert(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"verification_code", "updated_at"}),
		}).
		Create(user).Error
}

// UpsertProfile creates the user or refreshes the profile fields of an
// existing one, leaving any stored verification code untouched.
func (r *userRepositoryImpl) UpsertProfile(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "avatar_url", "github_login", "updated_at"}),
		}).
		Create(user).Error
}

// FindByEmail finds a user by email
func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll returns every user in the directory
func (r *userRepositoryImpl) FindAll(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := r.db.WithContext(ctx).
		Order("email ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update saves the full user record
func (r *userRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
