package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
	"github.com/d60-Lab/lazybook/internal/repository"
)

const searchLimit = 10

// FollowService owns the directed follow graph: edge writes, derived counts
// and per-viewer relationship flags.
type FollowService interface {
	Follow(ctx context.Context, actorID, targetUsername string) error
	Unfollow(ctx context.Context, actorID, targetUsername string) error
	GetProfile(ctx context.Context, viewerID, username string) (*model.ProfileDetails, error)
	ListFollowers(ctx context.Context, username string) ([]model.ProfileSummary, error)
	ListFollowing(ctx context.Context, username string) ([]model.ProfileSummary, error)
	Search(ctx context.Context, query string) ([]model.ProfileSummary, error)
}

type followService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewFollowService(userRepo repository.UserRepository, followRepo repository.FollowRepository) FollowService {
	return &followService{userRepo: userRepo, followRepo: followRepo}
}

func (s *followService) Follow(ctx context.Context, actorID, targetUsername string) error {
	target, err := s.userRepo.FindByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if actorID == target.ID {
		return ErrFollowSelf
	}
	exists, err := s.followRepo.Exists(ctx, actorID, target.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFollowing
	}
	// The pre-check races against concurrent follows; the pair unique index
	// is the authority and its violation means the same thing.
	if err := s.followRepo.Create(ctx, actorID, target.ID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *followService) Unfollow(ctx context.Context, actorID, targetUsername string) error {
	target, err := s.userRepo.FindByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if actorID == target.ID {
		return ErrUnfollowSelf
	}
	removed, err := s.followRepo.Delete(ctx, actorID, target.ID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFollowing
	}
	return nil
}

func (s *followService) GetProfile(ctx context.Context, viewerID, username string) (*model.ProfileDetails, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
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
	rel := model.Relationship{IsSelf: viewerID == user.ID}
	if !rel.IsSelf {
		if rel.IFollow, err = s.followRepo.Exists(ctx, viewerID, user.ID); err != nil {
			return nil, err
		}
		if rel.FollowsMe, err = s.followRepo.Exists(ctx, user.ID, viewerID); err != nil {
			return nil, err
		}
	}
	return &model.ProfileDetails{
		ID:             user.ID,
		Username:       user.Username,
		Status:         user.Status,
		PictureURL:     user.PictureURL,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		Relationship:   rel,
	}, nil
}

func (s *followService) ListFollowers(ctx context.Context, username string) ([]model.ProfileSummary, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, user.ID)
}

func (s *followService) ListFollowing(ctx context.Context, username string) ([]model.ProfileSummary, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, user.ID)
}

// Search does a case-insensitive username prefix match. A blank query
// short-circuits to an empty result without touching the store.
func (s *followService) Search(ctx context.Context, query string) ([]model.ProfileSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.ProfileSummary{}, nil
	}
	return s.userRepo.SearchByPrefix(ctx, query, searchLimit)
}
