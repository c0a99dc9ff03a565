package sortedstorage

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLeaderboardKey = "hunt:leaderboard"
)

// RedisLeaderboard ranks explorers in a Redis sorted set scored by best reward.
type RedisLeaderboard struct {
	client *redis.Client
	key    string
}

// NewRedisLeaderboard initializes a RedisLeaderboard stored under key.
func NewRedisLeaderboard(client *redis.Client, key string) (i.Leaderboard, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = defaultLeaderboardKey
	}
	return &RedisLeaderboard{client: client, key: key}, nil
}

// Submit raises the explorer's score to reward. Lower rewards are ignored.
func (rl *RedisLeaderboard) Submit(ctx context.Context, explorerID string, reward int) error {
	return rl.client.ZAddArgs(ctx, rl.key, redis.ZAddArgs{
		GT:      true,
		Members: []redis.Z{{Score: float64(reward), Member: explorerID}},
	}).Err()
}

// Top returns at most n standings, best first.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int) ([]dmn.Standing, error) {
	if n <= 0 {
		return []dmn.Standing{}, nil
	}
	entries, err := rl.client.ZRevRangeWithScores(ctx, rl.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	standings := make([]dmn.Standing, 0, len(entries))
	for _, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected leaderboard member %v", e.Member)
		}
		standings = append(standings, dmn.Standing{ExplorerID: member, Reward: int(e.Score)})
	}
	return standings, nil
}

