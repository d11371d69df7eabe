package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestHomeFeed(t *testing.T) {
	env := newTestEnv(t)
	follows := NewFollowService(env.userRepo, env.followRepo)
	feeds := NewFeedService(env.userRepo, env.postRepo, nil, 0, 0)
	ctx := context.Background()

	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	require.NoError(t, follows.Follow(ctx, alice.ID, "bob"))

	base := time.Now().Add(-time.Hour)
	env.createPost(t, bob.ID, "first from bob", base)
	env.createPost(t, alice.ID, "from alice", base.Add(time.Minute))
	env.createPost(t, carol.ID, "from carol", base.Add(2*time.Minute))
	env.createPost(t, bob.ID, "second from bob", base.Add(3*time.Minute))

	// Followed authors only, newest first. alice's own posts and carol's
	// are excluded.
	feed, err := feeds.Home(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "second from bob", feed[0].Text)
	assert.Equal(t, "first from bob", feed[1].Text)
	assert.Equal(t, "bob", feed[0].AuthorUsername)

	// bob follows nobody, so his home feed is empty.
	feed, err = feeds.Home(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)

	_, err = feeds.Home(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHomeFeedFollowsUnfollowVisibility(t *testing.T) {
	env := newTestEnv(t)
	follows := NewFollowService(env.userRepo, env.followRepo)
	feeds := NewFeedService(env.userRepo, env.postRepo, nil, 0, 0)
	ctx := context.Background()

	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	env.createPost(t, bob.ID, "hello", time.Now().Add(-time.Minute))

	feed, err := feeds.Home(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)

	require.NoError(t, follows.Follow(ctx, alice.ID, "bob"))
	feed, err = feeds.Home(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, feed, 1)

	// Unfollowing removes bob's posts from the feed immediately.
	require.NoError(t, follows.Unfollow(ctx, alice.ID, "bob"))
	feed, err = feeds.Home(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestExploreFeedOrderAndLimit(t *testing.T) {
	env := newTestEnv(t)
	feeds := NewFeedService(env.userRepo, env.postRepo, nil, 0, 3)
	ctx := context.Background()

	bob := env.createUser(t, "bob")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		env.createPost(t, bob.ID, "post", base.Add(time.Duration(i)*time.Minute))
	}

	feed, err := feeds.Explore(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.True(t, feed[0].CreatedAt.After(feed[1].CreatedAt))
	assert.True(t, feed[1].CreatedAt.After(feed[2].CreatedAt))
}

func TestExploreFeedCacheStaleness(t *testing.T) {
	env := newTestEnv(t)
	mr, cache := newTestCache(t)
	feeds := NewFeedService(env.userRepo, env.postRepo, cache, 30*time.Second, 50)
	ctx := context.Background()

	bob := env.createUser(t, "bob")
	env.createPost(t, bob.ID, "old post", time.Now().Add(-time.Minute))

	feed, err := feeds.Explore(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	// A new post inside the TTL window is not visible yet.
	env.createPost(t, bob.ID, "new post", time.Now())
	feed, err = feeds.Explore(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, "old post", feed[0].Text)

	// After the TTL lapses the entry is rebuilt from the store.
	mr.FastForward(31 * time.Second)
	feed, err = feeds.Explore(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "new post", feed[0].Text)
}

func TestExploreFeedCacheOutage(t *testing.T) {
	env := newTestEnv(t)
	mr, cache := newTestCache(t)
	feeds := NewFeedService(env.userRepo, env.postRepo, cache, 30*time.Second, 50)
	ctx := context.Background()

	bob := env.createUser(t, "bob")
	env.createPost(t, bob.ID, "still here", time.Now().Add(-time.Minute))

	// Cache down from the start: requests fall through to the store.
	mr.Close()
	feed, err := feeds.Explore(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "still here", feed[0].Text)
}

func TestExploreFeedCorruptCacheEntry(t *testing.T) {
	env := newTestEnv(t)
	mr, cache := newTestCache(t)
	feeds := NewFeedService(env.userRepo, env.postRepo, cache, 30*time.Second, 50)
	ctx := context.Background()

	bob := env.createUser(t, "bob")
	env.createPost(t, bob.ID, "real row", time.Now().Add(-time.Minute))

	require.NoError(t, mr.Set(exploreCacheKey, "{not json"))

	feed, err := feeds.Explore(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "real row", feed[0].Text)
}
