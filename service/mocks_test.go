package service

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockHuntRepo struct{ mock.Mock }

func (m *mockHuntRepo) Save(hunt *dmn.Hunt) error {
	return m.Called(hunt).Error(0)
}

func (m *mockHuntRepo) ByID(id uuid.UUID) (*dmn.Hunt, error) {
	args := m.Called(id)
	hunt, _ := args.Get(0).(*dmn.Hunt)
	return hunt, args.Error(1)
}

func (m *mockHuntRepo) ByExplorer(explorerID uuid.UUID, limit int) ([]*dmn.Hunt, error) {
	args := m.Called(explorerID, limit)
	hunts, _ := args.Get(0).([]*dmn.Hunt)
	return hunts, args.Error(1)
}

type mockExplorerRepo struct{ mock.Mock }

func (m *mockExplorerRepo) Save(explorer *dmn.Explorer) error {
	return m.Called(explorer).Error(0)
}

func (m *mockExplorerRepo) ByID(id uuid.UUID) (*dmn.Explorer, error) {
	args := m.Called(id)
	explorer, _ := args.Get(0).(*dmn.Explorer)
	return explorer, args.Error(1)
}

func (m *mockExplorerRepo) ByUsername(username string) (*dmn.Explorer, error) {
	args := m.Called(username)
	explorer, _ := args.Get(0).(*dmn.Explorer)
	return explorer, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, fingerprint string) (*dmn.Hunt, bool, error) {
	args := m.Called(ctx, fingerprint)
	hunt, _ := args.Get(0).(*dmn.Hunt)
	return hunt, args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, fingerprint string, hunt *dmn.Hunt, ttl time.Duration) error {
	return m.Called(ctx, fingerprint, hunt, ttl).Error(0)
}

type mockLocker struct{ mock.Mock }

func (m *mockLocker) Lock(ctx context.Context, key string) (func() error, error) {
	args := m.Called(ctx, key)
	unlock, _ := args.Get(0).(func() error)
	return unlock, args.Error(1)
}

type mockLeaderboard struct{ mock.Mock }

func (m *mockLeaderboard) Submit(ctx context.Context, explorerID string, reward int) error {
	return m.Called(ctx, explorerID, reward).Error(0)
}

func (m *mockLeaderboard) Top(ctx context.Context, n int) ([]dmn.Standing, error) {
	args := m.Called(ctx, n)
	standings, _ := args.Get(0).([]dmn.Standing)
	return standings, args.Error(1)
}

type mockTokenizer struct{ mock.Mock }

func (m *mockTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	args := m.Called(claims, expTime)
	return args.String(0), args.Error(1)
}

func (m *mockTokenizer) Decode(token string) (map[string]interface{}, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(map[string]interface{})
	return claims, args.Error(1)
}
