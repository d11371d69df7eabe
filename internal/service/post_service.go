package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
	"github.com/d60-Lab/lazybook/internal/repository"
)

type PostService interface {
	Create(ctx context.Context, authorID, text string) (*model.PostSummary, error)
	GetByID(ctx context.Context, id string) (*model.PostSummary, error)
	ListByUsername(ctx context.Context, username string) ([]model.PostSummary, error)
}

type postService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func NewPostService(userRepo repository.UserRepository, postRepo repository.PostRepository) PostService {
	return &postService{userRepo: userRepo, postRepo: postRepo}
}

func (s *postService) Create(ctx context.Context, authorID, text string) (*model.PostSummary, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	post := &model.Post{AuthorID: author.ID, Text: strings.TrimSpace(text)}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return &model.PostSummary{
		ID:               post.ID,
		AuthorID:         author.ID,
		AuthorUsername:   author.Username,
		AuthorPictureURL: author.PictureURL,
		Text:             post.Text,
		CreatedAt:        post.CreatedAt,
	}, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*model.PostSummary, error) {
	post, err := s.postRepo.FindSummaryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) ListByUsername(ctx context.Context, username string) ([]model.PostSummary, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.postRepo.ListByAuthor(ctx, user.ID)
}
