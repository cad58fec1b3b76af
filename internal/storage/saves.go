package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/trivia-maze/internal/maze"
)

// ErrSaveNotFound is returned when a save ID does not exist.
var ErrSaveNotFound = errors.New("storage: save not found")

const (
	doorDead   = "dead"
	doorOpened = "opened"
)

// SavedGame is a persisted trivia maze in progress.
type SavedGame struct {
	ID        string // Assigned by SaveGame when empty
	Mode      string
	Maze      maze.State
	Opened    []maze.Edge // Doors already answered correctly
	Score     int
	Correct   int
	Wrong     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaveGame inserts or replaces a saved game and returns its ID.
func (s *Store) SaveGame(g SavedGame) (string, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO saves (id, mode, size, player_x, player_y, score, correct, wrong)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     mode = excluded.mode,
		     size = excluded.size,
		     player_x = excluded.player_x,
		     player_y = excluded.player_y,
		     score = excluded.score,
		     correct = excluded.correct,
		     wrong = excluded.wrong,
		     updated_at = CURRENT_TIMESTAMP`,
		g.ID, g.Mode, g.Maze.Size, g.Maze.Player.X, g.Maze.Player.Y, g.Score, g.Correct, g.Wrong,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM save_doors WHERE save_id = ?", g.ID); err != nil {
		return "", fmt.Errorf("storage: cannot clear save doors: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO save_doors (save_id, kind, ax, ay, bx, by) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare door insert: %w", err)
	}
	defer stmt.Close()

	insert := func(kind string, edges []maze.Edge) error {
		for _, e := range edges {
			if _, err := stmt.Exec(g.ID, kind, e.A.X, e.A.Y, e.B.X, e.B.Y); err != nil {
				return fmt.Errorf("storage: cannot save %s door %s: %w", kind, e, err)
			}
		}
		return nil
	}
	if err := insert(doorDead, g.Maze.Dead); err != nil {
		return "", err
	}
	if err := insert(doorOpened, g.Opened); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit save: %w", err)
	}
	return g.ID, nil
}

// LoadGame retrieves a saved game with its doors.
func (s *Store) LoadGame(id string) (*SavedGame, error) {
	g := SavedGame{ID: id}
	var createdAt, updatedAt any

	err := s.db.QueryRow(
		`SELECT mode, size, player_x, player_y, score, correct, wrong, created_at, updated_at
		 FROM saves WHERE id = ?`,
		id,
	).Scan(&g.Mode, &g.Maze.Size, &g.Maze.Player.X, &g.Maze.Player.Y,
		&g.Score, &g.Correct, &g.Wrong, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query save: %w", err)
	}
	g.CreatedAt = parseTime(createdAt)
	g.UpdatedAt = parseTime(updatedAt)

	rows, err := s.db.Query(
		`SELECT kind, ax, ay, bx, by FROM save_doors
		 WHERE save_id = ?
		 ORDER BY ay, ax, by, bx`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query save doors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var e maze.Edge
		if err := rows.Scan(&kind, &e.A.X, &e.A.Y, &e.B.X, &e.B.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan door row: %w", err)
		}
		switch kind {
		case doorDead:
			g.Maze.Dead = append(g.Maze.Dead, e)
		case doorOpened:
			g.Opened = append(g.Opened, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &g, nil
}

// ListSaves returns the most recently updated saves. Door lists are not
// loaded; use LoadGame for a full save.
func (s *Store) ListSaves(limit int) ([]SavedGame, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, size, player_x, player_y, score, correct, wrong, created_at, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var saves []SavedGame
	for rows.Next() {
		var g SavedGame
		var createdAt, updatedAt any
		if err := rows.Scan(&g.ID, &g.Mode, &g.Maze.Size, &g.Maze.Player.X, &g.Maze.Player.Y,
			&g.Score, &g.Correct, &g.Wrong, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan save row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		g.UpdatedAt = parseTime(updatedAt)
		saves = append(saves, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return saves, nil
}

// DeleteSave removes a saved game and its doors.
func (s *Store) DeleteSave(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM save_doors WHERE save_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete save doors: %w", err)
	}
	res, err := tx.Exec("DELETE FROM saves WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}
