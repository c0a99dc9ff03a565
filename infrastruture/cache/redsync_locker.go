package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockExpiry = 30 * time.Second
	defaultLockTries  = 64
)

// RedsyncLocker hands out redsync mutexes shared by every server instance.
type RedsyncLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
}

// NewRedsyncLocker creates a Locker backed by client. Locks expire after
// expiry if their holder dies.
func NewRedsyncLocker(client *redis.Client, expiry time.Duration) (i.Locker, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if expiry <= 0 {
		expiry = defaultLockExpiry
	}
	pool := goredis.NewPool(client)
	return &RedsyncLocker{
		locker: redsync.New(pool),
		expiry: expiry,
	}, nil
}

// Lock blocks until key is held or ctx is done.
func (l *RedsyncLocker) Lock(ctx context.Context, key string) (func() error, error) {
	mutex := l.locker.NewMutex(key,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(defaultLockTries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() error {
		_, err := mutex.Unlock()
		return err
	}, nil
}
