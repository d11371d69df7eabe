package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
	"github.com/d60-Lab/lazybook/internal/repository"
)

type testEnv struct {
	db         *gorm.DB
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
	msgRepo    repository.MessageRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Follow{}, &model.Post{}, &model.Message{}))
	return &testEnv{
		db:         db,
		userRepo:   repository.NewUserRepository(db),
		followRepo: repository.NewFollowRepository(db),
		postRepo:   repository.NewPostRepository(db),
		msgRepo:    repository.NewMessageRepository(db),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123456"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		AuthProvider: model.ProviderLocal,
	}
	require.NoError(t, e.userRepo.Create(context.Background(), u))
	return u
}

func (e *testEnv) createPost(t *testing.T, authorID, text string, at time.Time) *model.Post {
	t.Helper()
	p := &model.Post{AuthorID: authorID, Text: text, CreatedAt: at}
	require.NoError(t, e.postRepo.Create(context.Background(), p))
	return p
}

func (e *testEnv) edgeCount(t *testing.T) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, e.db.Model(&model.Follow{}).Count(&cnt).Error)
	return cnt
}
