package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
)

// postColumns is the shared projection for post reads. Author fields come
// from an explicit join so no query ever walks entity associations.
var postColumns = []string{
	"posts.id",
	"posts.author_id",
	"users.username AS author_username",
	"users.picture_url AS author_picture_url",
	"posts.text",
	"posts.created_at",
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindSummaryByID(ctx context.Context, id string) (*model.PostSummary, error)
	ListByAuthor(ctx context.Context, authorID string) ([]model.PostSummary, error)
	// HomeFeed returns posts authored by users the viewer follows, newest first.
	HomeFeed(ctx context.Context, viewerID string) ([]model.PostSummary, error)
	// Explore returns the newest posts across all users, newest first.
	Explore(ctx context.Context, limit int) ([]model.PostSummary, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindSummaryByID(ctx context.Context, id string) (*model.PostSummary, error) {
	var row model.PostSummary
	err := r.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.author_id").
		Where("posts.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]model.PostSummary, error) {
	var rows []model.PostSummary
	err := r.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.author_id").
		Where("posts.author_id = ?", authorID).
		Order("posts.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *postRepository) HomeFeed(ctx context.Context, viewerID string) ([]model.PostSummary, error) {
	var rows []model.PostSummary
	err := r.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("JOIN follows ON follows.followee_id = posts.author_id").
		Where("follows.follower_id = ?", viewerID).
		Order("posts.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *postRepository) Explore(ctx context.Context, limit int) ([]model.PostSummary, error) {
	var rows []model.PostSummary
	err := r.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.author_id").
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
