package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByUsername matches case-insensitively.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	SearchByPrefix(ctx context.Context, prefix string, limit int) ([]model.ProfileSummary, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePicture(ctx context.Context, id, pictureURL string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// likeEscaper neutralizes LIKE metacharacters so the prefix is matched
// literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *userRepository) SearchByPrefix(ctx context.Context, prefix string, limit int) ([]model.ProfileSummary, error) {
	var rows []model.ProfileSummary
	pattern := likeEscaper.Replace(strings.ToLower(prefix)) + "%"
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("id", "username", "picture_url").
		Where(`LOWER(username) LIKE ? ESCAPE '\'`, pattern).
		Order("username").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *userRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *userRepository) UpdatePicture(ctx context.Context, id, pictureURL string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("picture_url", pictureURL).Error
}
