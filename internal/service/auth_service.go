package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
	"github.com/d60-Lab/lazybook/internal/repository"
	"github.com/d60-Lab/lazybook/pkg/token"
)

// AuthService covers registration, login and the owner-only account surface.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.ProfileSummary, error)
	// Login returns a signed bearer token on success.
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context, viewerID string) (*model.AccountDetails, error)
	UpdateStatus(ctx context.Context, viewerID, status string) (*model.AccountDetails, error)
	UpdatePicture(ctx context.Context, viewerID string, data []byte, originalName string) (string, error)
}

// BlobStore persists an uploaded file and returns its public URL.
type BlobStore interface {
	Save(data []byte, originalName string) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	tokens     *token.Manager
	blobs      BlobStore
}

func NewAuthService(userRepo repository.UserRepository, followRepo repository.FollowRepository, tokens *token.Manager, blobs BlobStore) AuthService {
	return &authService{userRepo: userRepo, followRepo: followRepo, tokens: tokens, blobs: blobs}
}

func (s *authService) Register(ctx context.Context, username, password string) (*model.ProfileSummary, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		AuthProvider: model.ProviderLocal,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Concurrent registration of the same name loses on the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &model.ProfileSummary{ID: user.ID, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID, user.Username)
}

func (s *authService) Me(ctx context.Context, viewerID string) (*model.AccountDetails, error) {
	user, err := s.userRepo.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	followerCount, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &model.AccountDetails{
		ID:             user.ID,
		Username:       user.Username,
		Status:         user.Status,
		PictureURL:     user.PictureURL,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}, nil
}

func (s *authService) UpdateStatus(ctx context.Context, viewerID, status string) (*model.AccountDetails, error) {
	user, err := s.userRepo.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.userRepo.UpdateStatus(ctx, user.ID, status); err != nil {
		return nil, err
	}
	return s.Me(ctx, viewerID)
}

func (s *authService) UpdatePicture(ctx context.Context, viewerID string, data []byte, originalName string) (string, error) {
	user, err := s.userRepo.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	url, err := s.blobs.Save(data, originalName)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.UpdatePicture(ctx, user.ID, url); err != nil {
		return "", err
	}
	return url, nil
}
