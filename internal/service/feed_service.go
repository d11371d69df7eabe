package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
	"github.com/d60-Lab/lazybook/internal/repository"
	"github.com/d60-Lab/lazybook/pkg/logger"
)

// exploreCacheKey is viewer-independent: the explore feed is global, so one
// entry serves everybody.
const exploreCacheKey = "feed:explore"

type FeedService interface {
	Home(ctx context.Context, viewerID string) ([]model.PostSummary, error)
	Explore(ctx context.Context) ([]model.PostSummary, error)
}

type feedService struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	cache        *redis.Client
	exploreTTL   time.Duration
	exploreLimit int
}

// NewFeedService builds the feed reader. cache may be nil, which disables
// the explore cache entirely.
func NewFeedService(userRepo repository.UserRepository, postRepo repository.PostRepository, cache *redis.Client, exploreTTL time.Duration, exploreLimit int) FeedService {
	if exploreTTL <= 0 {
		exploreTTL = 30 * time.Second
	}
	if exploreLimit <= 0 {
		exploreLimit = 50
	}
	return &feedService{
		userRepo:     userRepo,
		postRepo:     postRepo,
		cache:        cache,
		exploreTTL:   exploreTTL,
		exploreLimit: exploreLimit,
	}
}

func (s *feedService) Home(ctx context.Context, viewerID string) ([]model.PostSummary, error) {
	if _, err := s.userRepo.FindByID(ctx, viewerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.postRepo.HomeFeed(ctx, viewerID)
}

// Explore serves the global feed through a fixed-TTL read-through cache.
// The cache is best effort: any cache failure degrades to a direct store
// query, never to a failed request. Callers may observe results up to the
// TTL stale; new posts do not invalidate the entry.
func (s *feedService) Explore(ctx context.Context) ([]model.PostSummary, error) {
	if s.cache != nil {
		data, err := s.cache.Get(ctx, exploreCacheKey).Bytes()
		if err == nil {
			var out []model.PostSummary
			uErr := json.Unmarshal(data, &out)
			if uErr == nil {
				return out, nil
			}
			logger.Warn("explore cache entry corrupt, querying store", zap.Error(uErr))
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("explore cache get failed, querying store", zap.Error(err))
		}
	}

	rows, err := s.postRepo.Explore(ctx, s.exploreLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, mErr := json.Marshal(rows); mErr == nil {
			if sErr := s.cache.Set(ctx, exploreCacheKey, payload, s.exploreTTL).Err(); sErr != nil {
				logger.Warn("explore cache set failed", zap.Error(sErr))
			}
		}
	}
	return rows, nil
}
