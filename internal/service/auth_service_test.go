package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/lazybook/internal/storage"
	"github.com/d60-Lab/lazybook/pkg/token"
)

func newAuthService(t *testing.T, env *testEnv) (AuthService, *token.Manager, string) {
	t.Helper()
	dir := t.TempDir()
	blobs, err := storage.NewFileStore(dir, "/uploads")
	require.NoError(t, err)
	tokens := token.NewManager("test-secret", 30*time.Minute)
	return NewAuthService(env.userRepo, env.followRepo, tokens, blobs), tokens, dir
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc, tokens, _ := newAuthService(t, env)
	ctx := context.Background()

	profile, err := svc.Register(ctx, "alice", "longenoughpw")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.NotEmpty(t, profile.ID)

	tok, err := svc.Login(ctx, "alice", "longenoughpw")
	require.NoError(t, err)
	claims, err := tokens.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	// Credentials stored hashed, never verbatim.
	user, err := env.userRepo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.NotContains(t, user.PasswordHash, "longenoughpw")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	svc, _, _ := newAuthService(t, env)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "longenoughpw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "otherpassword")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Username uniqueness is case-insensitive.
	_, err = svc.Register(ctx, "ALICE", "otherpassword")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	svc, _, _ := newAuthService(t, env)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "longenoughpw")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown usernames get the same error as wrong passwords.
	_, err = svc.Login(ctx, "ghost", "longenoughpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountStatusAndCounts(t *testing.T) {
	env := newTestEnv(t)
	svc, _, _ := newAuthService(t, env)
	follows := NewFollowService(env.userRepo, env.followRepo)
	ctx := context.Background()

	alice, err := svc.Register(ctx, "alice", "longenoughpw")
	require.NoError(t, err)
	bob, err := svc.Register(ctx, "bob", "longenoughpw")
	require.NoError(t, err)
	require.NoError(t, follows.Follow(ctx, bob.ID, "alice"))

	acct, err := svc.UpdateStatus(ctx, alice.ID, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", acct.Status)
	assert.EqualValues(t, 1, acct.FollowerCount)
	assert.EqualValues(t, 0, acct.FollowingCount)

	acct, err = svc.Me(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", acct.Status)

	_, err = svc.Me(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdatePicture(t *testing.T) {
	env := newTestEnv(t)
	svc, _, dir := newAuthService(t, env)
	ctx := context.Background()

	alice, err := svc.Register(ctx, "alice", "longenoughpw")
	require.NoError(t, err)

	url, err := svc.UpdatePicture(ctx, alice.ID, []byte("fake-png-bytes"), "avatar.png")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The stored name is generated, not the client-supplied one.
	name := strings.TrimPrefix(url, "/uploads/")
	assert.NotEqual(t, "avatar.png", name)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png-bytes"), data)

	acct, err := svc.Me(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, url, acct.PictureURL)
}
