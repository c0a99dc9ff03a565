package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/google/uuid"
)

const (
	defaultCacheTTL         = 10 * time.Minute
	defaultLeaderboardLimit = 10
	defaultHistoryLimit     = 20
	lockKeyFmt              = "hunt:lock:%s"
)

var (
	ErrMissingHuntRepo = errors.New("hunt repository is required")
)

// HuntConfig wires a HuntService. Cache, Locker, Leaderboard and Explorers
// are optional; a nil one is skipped.
type HuntConfig struct {
	Hunts             i.HuntRepo
	Explorers         i.ExplorerRepo
	Cache             i.HuntCache
	Locker            i.Locker
	Leaderboard       i.Leaderboard
	Logger            i.Logger
	CacheTTL          time.Duration
	MaxRecursiveItems int
	MaxTableCells     int // budget for (treasures+1)*(capacity+1); dmn.DefaultMaxTableCells when zero
}

// HuntService runs hunts on generated mazes and keeps their history.
type HuntService struct {
	cfg HuntConfig
	now func() time.Time
}

// NewHuntService creates a new HuntService.
func NewHuntService(cfg HuntConfig) (i.HuntService, error) {
	if cfg.Hunts == nil {
		return nil, ErrMissingHuntRepo
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.MaxRecursiveItems <= 0 {
		cfg.MaxRecursiveItems = DefaultMaxRecursiveItems
	}
	if cfg.MaxTableCells <= 0 {
		cfg.MaxTableCells = dmn.DefaultMaxTableCells
	}

	return &HuntService{
		cfg: cfg,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// Hunt runs req for the explorer. Identical requests by the same explorer are
// answered from the cache; concurrent ones are serialised on the request
// fingerprint so the work happens once.
func (s *HuntService) Hunt(ctx context.Context, explorerID uuid.UUID, req dmn.HuntRequest) (*dmn.Hunt, error) {
	req = req.WithDefaults()
	if err := req.ValidateWithin(s.limits()); err != nil {
		return nil, err
	}

	fp := req.Fingerprint(explorerID)
	if hunt, ok := s.cached(ctx, fp); ok {
		return hunt, nil
	}

	if s.cfg.Locker != nil {
		unlock, err := s.cfg.Locker.Lock(ctx, fmt.Sprintf(lockKeyFmt, fp))
		if err != nil {
			return nil, fmt.Errorf("locking hunt: %w", err)
		}
		defer func() {
			if err := unlock(); err != nil {
				s.cfg.Logger.Warning(fmt.Sprintf("Releasing hunt lock %s: %v", fp, err))
			}
		}()

		if hunt, ok := s.cached(ctx, fp); ok {
			return hunt, nil
		}
	}

	m, err := req.Maze.Build()
	if err != nil {
		return nil, fmt.Errorf("building maze: %w", err)
	}

	hunter := NewHunter(req.Capacity, req.Algorithm, s.cfg.Logger, WithMaxRecursiveItems(s.cfg.MaxRecursiveItems))
	outcome, err := hunter.Run(m, req.Entrance, req.Exit)
	if err != nil {
		return nil, err
	}

	hunt := outcome.Record(explorerID, req, s.now())

	if err := s.cfg.Hunts.Save(hunt); err != nil {
		return nil, fmt.Errorf("saving hunt: %w", err)
	}
	s.cfg.Logger.Info(fmt.Sprintf("Hunt saved: ID=%s Explorer=%s Reward=%d", hunt.ID, explorerID, hunt.Reward))

	if s.cfg.Cache != nil {
		if err := s.cfg.Cache.Set(ctx, fp, hunt, s.cfg.CacheTTL); err != nil {
			s.cfg.Logger.Warning(fmt.Sprintf("Caching hunt %s: %v", hunt.ID, err))
		}
	}
	s.recordReward(ctx, explorerID, hunt.Reward)

	return hunt, nil
}

func (s *HuntService) limits() dmn.Limits {
	return dmn.Limits{MaxTableCells: s.cfg.MaxTableCells}
}

func (s *HuntService) cached(ctx context.Context, fp string) (*dmn.Hunt, bool) {
	if s.cfg.Cache == nil {
		return nil, false
	}
	hunt, ok, err := s.cfg.Cache.Get(ctx, fp)
	if err != nil {
		s.cfg.Logger.Warning(fmt.Sprintf("Reading hunt cache: %v", err))
		return nil, false
	}
	if ok {
		s.cfg.Logger.Info(fmt.Sprintf("Hunt cache hit: ID=%s", hunt.ID))
	}
	return hunt, ok
}

// recordReward raises the explorer's best reward and leaderboard score.
// Failures are logged; the hunt itself is already saved.
func (s *HuntService) recordReward(ctx context.Context, explorerID uuid.UUID, reward int) {
	if s.cfg.Leaderboard != nil {
		if err := s.cfg.Leaderboard.Submit(ctx, explorerID.String(), reward); err != nil {
			s.cfg.Logger.Warning(fmt.Sprintf("Submitting reward for %s: %v", explorerID, err))
		}
	}

	if s.cfg.Explorers == nil {
		return
	}
	explorer, err := s.cfg.Explorers.ByID(explorerID)
	if err != nil {
		s.cfg.Logger.Warning(fmt.Sprintf("Loading explorer %s: %v", explorerID, err))
		return
	}
	if explorer.RecordReward(reward) {
		if err := s.cfg.Explorers.Save(explorer); err != nil {
			s.cfg.Logger.Warning(fmt.Sprintf("Saving best reward for %s: %v", explorerID, err))
		}
	}
}

// Appraise packs the best knapsack over every treasure of a generated maze.
func (s *HuntService) Appraise(_ context.Context, req dmn.AppraisalRequest) (*dmn.Appraisal, error) {
	req = req.WithDefaults()
	if err := req.ValidateWithin(s.limits()); err != nil {
		return nil, err
	}

	m, err := req.Maze.Build()
	if err != nil {
		return nil, fmt.Errorf("building maze: %w", err)
	}

	hunter := NewHunter(req.Capacity, req.Algorithm, s.cfg.Logger, WithMaxRecursiveItems(s.cfg.MaxRecursiveItems))
	items, solution, err := hunter.Appraise(m)
	if err != nil {
		return nil, err
	}

	return &dmn.Appraisal{
		Request:  req,
		Items:    items,
		Solution: solution,
		Summary:  m.Summary(),
	}, nil
}

func (s *HuntService) ByID(_ context.Context, id uuid.UUID) (*dmn.Hunt, error) {
	return s.cfg.Hunts.ByID(id)
}

func (s *HuntService) ByExplorer(_ context.Context, explorerID uuid.UUID, limit int) ([]*dmn.Hunt, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.cfg.Hunts.ByExplorer(explorerID, limit)
}

// Leaderboard returns the top n explorers. Without a leaderboard it is empty.
func (s *HuntService) Leaderboard(ctx context.Context, n int) ([]dmn.Standing, error) {
	if s.cfg.Leaderboard == nil {
		return []dmn.Standing{}, nil
	}
	if n <= 0 {
		n = defaultLeaderboardLimit
	}
	return s.cfg.Leaderboard.Top(ctx, n)
}
