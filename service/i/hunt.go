package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/google/uuid"
)

// HuntService runs treasure hunts and serves their history.
type HuntService interface {
	Hunt(ctx context.Context, explorerID uuid.UUID, req dmn.HuntRequest) (*dmn.Hunt, error)
	Appraise(ctx context.Context, req dmn.AppraisalRequest) (*dmn.Appraisal, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Hunt, error)
	ByExplorer(ctx context.Context, explorerID uuid.UUID, limit int) ([]*dmn.Hunt, error)
	Leaderboard(ctx context.Context, n int) ([]dmn.Standing, error)
}
