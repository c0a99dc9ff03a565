package i

import (
	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/google/uuid"
)

// ExplorerRepo defines the interface for explorer persistence operations.
type ExplorerRepo interface {
	// Save inserts or updates an explorer in the repository.
	// If the explorer already exists, it updates the record. Otherwise, it creates a new one.
	Save(explorer *dmn.Explorer) error

	// ByID retrieves an explorer by their unique ID.
	// Returns dmn.ErrExplorerNotFound if there is no such explorer.
	ByID(id uuid.UUID) (*dmn.Explorer, error)

	// ByUsername retrieves an explorer by their username.
	// Returns dmn.ErrExplorerNotFound if there is no such explorer.
	ByUsername(username string) (*dmn.Explorer, error)
}

// HuntRepo stores completed hunts.
type HuntRepo interface {
	// Save inserts a hunt, replacing any hunt with the same ID.
	Save(hunt *dmn.Hunt) error

	// ByID returns dmn.ErrHuntNotFound if there is no such hunt.
	ByID(id uuid.UUID) (*dmn.Hunt, error)

	// ByExplorer lists an explorer's hunts, most recent first. limit <= 0 means no limit.
	ByExplorer(explorerID uuid.UUID, limit int) ([]*dmn.Hunt, error)
}
