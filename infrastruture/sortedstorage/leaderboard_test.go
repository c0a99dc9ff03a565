package sortedstorage

import (
	"context"
	"os"
	"testing"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLeaderboard(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	ctx := context.Background()
	key := "test-leaderboard-" + uuid.NewString()
	defer client.Del(ctx, key)

	board, err := NewRedisLeaderboard(client, key)
	require.NoError(t, err)

	require.NoError(t, board.Submit(ctx, "alice", 5))
	require.NoError(t, board.Submit(ctx, "bob", -2))
	require.NoError(t, board.Submit(ctx, "alice", 3))
	require.NoError(t, board.Submit(ctx, "bob", 9))

	top, err := board.Top(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []dmn.Standing{{ExplorerID: "bob", Reward: 9}, {ExplorerID: "alice", Reward: 5}}, top)

	top, err = board.Top(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	top, err = board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestNewRedisLeaderboardNeedsClient(t *testing.T) {
	_, err := NewRedisLeaderboard(nil, "")
	assert.Error(t, err)
}
