package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
)

// HuntCache keeps finished hunts by request fingerprint.
type HuntCache interface {
	// Get reports false on a miss.
	Get(ctx context.Context, fingerprint string) (*dmn.Hunt, bool, error)
	Set(ctx context.Context, fingerprint string, hunt *dmn.Hunt, ttl time.Duration) error
}

// Locker hands out a mutual-exclusion lock per key across processes.
type Locker interface {
	// Lock blocks until the key is held and returns the function releasing it.
	Lock(ctx context.Context, key string) (unlock func() error, err error)
}

// Leaderboard ranks explorers by their best reward.
type Leaderboard interface {
	// Submit records reward for the explorer if it beats their current score.
	Submit(ctx context.Context, explorerID string, reward int) error

	// Top returns at most n standings, best first.
	Top(ctx context.Context, n int) ([]dmn.Standing, error)
}
