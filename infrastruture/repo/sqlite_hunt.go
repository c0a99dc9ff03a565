package repo

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	historyFile = "history.db"

	createHunts = `CREATE TABLE IF NOT EXISTS hunts (
		hunt_id     TEXT PRIMARY KEY,
		explorer_id TEXT NOT NULL,
		reward      INTEGER NOT NULL,
		created_at  INTEGER NOT NULL,
		document    TEXT NOT NULL
	);`
	idxHuntsExplorer = `CREATE INDEX IF NOT EXISTS idx_hunts_explorer ON hunts(explorer_id, created_at);`

	upsertHunt = `INSERT INTO hunts (hunt_id, explorer_id, reward, created_at, document)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(hunt_id) DO UPDATE SET
			explorer_id = excluded.explorer_id,
			reward      = excluded.reward,
			created_at  = excluded.created_at,
			document    = excluded.document`
	selectHunt         = `SELECT document FROM hunts WHERE hunt_id = ?`
	selectExplorerHunt = `SELECT document FROM hunts WHERE explorer_id = ? ORDER BY created_at DESC, hunt_id LIMIT ?`
)

// SQLiteHuntRepo keeps hunts in a local SQLite file. The full hunt is stored
// as JSON next to the columns used for lookups.
type SQLiteHuntRepo struct {
	db *sql.DB
}

// OpenSQLiteHuntRepo opens (creating if needed) history.db under dataDir.
func OpenSQLiteHuntRepo(dataDir string) (*SQLiteHuntRepo, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, historyFile))
	if err != nil {
		return nil, err
	}
	for _, ddl := range []string{createHunts, idxHuntsExplorer} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating history schema: %w", err)
		}
	}
	return &SQLiteHuntRepo{db: db}, nil
}

// Close releases the database file.
func (s *SQLiteHuntRepo) Close() error {
	return s.db.Close()
}

// Save inserts a hunt, replacing any hunt with the same ID.
func (s *SQLiteHuntRepo) Save(hunt *dmn.Hunt) error {
	doc, err := json.Marshal(hunt)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(upsertHunt,
		hunt.ID.String(), hunt.ExplorerID.String(), hunt.Reward, hunt.CreatedAt.UnixNano(), string(doc))
	return err
}

// ByID retrieves a hunt by its ID.
func (s *SQLiteHuntRepo) ByID(id uuid.UUID) (*dmn.Hunt, error) {
	var doc string
	if err := s.db.QueryRow(selectHunt, id.String()).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dmn.ErrHuntNotFound
		}
		return nil, err
	}
	return decodeHunt(doc)
}

// ByExplorer lists an explorer's hunts, most recent first. limit <= 0 means no limit.
func (s *SQLiteHuntRepo) ByExplorer(explorerID uuid.UUID, limit int) ([]*dmn.Hunt, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(selectExplorerHunt, explorerID.String(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hunts := make([]*dmn.Hunt, 0)
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		hunt, err := decodeHunt(doc)
		if err != nil {
			return nil, err
		}
		hunts = append(hunts, hunt)
	}
	return hunts, rows.Err()
}

func decodeHunt(doc string) (*dmn.Hunt, error) {
	var hunt dmn.Hunt
	if err := json.Unmarshal([]byte(doc), &hunt); err != nil {
		return nil, fmt.Errorf("decoding hunt: %w", err)
	}
	return &hunt, nil
}
