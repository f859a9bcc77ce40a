// Package store persists league snapshots in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"draft-value/internal/league"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// ErrNotFound is returned when no league is saved under a name.
var ErrNotFound = errors.New("league not found")

// Store keeps one snapshot per league name.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Summary describes a saved league without decoding its snapshot.
type Summary struct {
	Name      string    `json:"name"`
	Players   int       `json:"players"`
	Drafted   int       `json:"drafted"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Open opens (creating if needed) the SQLite file at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save writes the snapshot under its league name, replacing any previous save.
func (s *Store) Save(ctx context.Context, snap league.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(snap.Name)
	if name == "" {
		return fmt.Errorf("league name is required")
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	players := map[string]bool{}
	for _, p := range snap.Projections {
		players[p.ID] = true
	}
	drafted := 0
	for _, t := range snap.Teams {
		drafted += len(t.Entries)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO leagues (name, snapshot, players, drafted, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   snapshot = excluded.snapshot,
		   players = excluded.players,
		   drafted = excluded.drafted,
		   updated_at = excluded.updated_at`,
		name, string(raw), len(players), drafted, s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save league %s: %w", name, err)
	}
	return nil
}

// Load returns the snapshot saved under name.
func (s *Store) Load(ctx context.Context, name string) (league.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return league.Snapshot{}, err
	}
	if s == nil || s.sqlDB == nil {
		return league.Snapshot{}, fmt.Errorf("storage is not configured")
	}
	var raw string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT snapshot FROM leagues WHERE name = ?`, strings.TrimSpace(name)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return league.Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return league.Snapshot{}, fmt.Errorf("load league %s: %w", name, err)
	}
	var snap league.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return league.Snapshot{}, fmt.Errorf("decode league %s: %w", name, err)
	}
	return snap, nil
}

// List returns every saved league, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, players, drafted, updated_at FROM leagues ORDER BY updated_at DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var updated int64
		if err := rows.Scan(&sum.Name, &sum.Players, &sum.Drafted, &updated); err != nil {
			return nil, fmt.Errorf("scan league: %w", err)
		}
		sum.UpdatedAt = time.UnixMilli(updated).UTC()
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return out, nil
}

// Delete removes a saved league.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM leagues WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("delete league %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete league %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
