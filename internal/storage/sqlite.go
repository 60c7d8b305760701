// Package storage keeps the ledger of finished games for the running process.
// It uses a private in-memory database on the pure-Go modernc.org/sqlite driver;
// nothing is written to disk and the ledger is gone when the process exits.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store owns the in-memory ledger. It is safe for concurrent use by SSH sessions.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Result is one finished game.
type Result struct {
	ID         int64
	Player     string // SSH user, or "local"
	Difficulty int
	Won        bool
	Moves      int
	Revealed   int // Safe cells revealed when the game ended
	Duration   time.Duration
	CreatedAt  time.Time
}

// DifficultyStats aggregates results for one difficulty.
type DifficultyStats struct {
	Difficulty int
	Played     int
	Won        int
	BestTime   time.Duration // Fastest win; zero when there is none
	AvgMoves   float64
}

// WinRate returns the share of games won, in [0, 1].
func (d DifficultyStats) WinRate() float64 {
	if d.Played == 0 {
		return 0
	}
	return float64(d.Won) / float64(d.Played)
}

// Open creates an empty in-memory ledger.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so keep exactly one alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			difficulty INTEGER NOT NULL,
			won INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			revealed INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_fastest ON results(difficulty, won, duration_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its ID.
// A zero CreatedAt is filled with the current time.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Player == "" {
		return 0, errors.New("storage: result has no player")
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (player, difficulty, won, moves, revealed, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Difficulty, boolToInt(r.Won), r.Moves, r.Revealed,
		r.Duration.Milliseconds(), r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentResults returns the newest results first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, player, difficulty, won, moves, revealed, duration_ms, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// FastestWins returns the quickest wins at the given difficulty.
func (s *Store) FastestWins(difficulty, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, player, difficulty, won, moves, revealed, duration_ms, created_at
		 FROM results
		 WHERE difficulty = ? AND won = 1
		 ORDER BY duration_ms ASC, moves ASC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r          Result
			won        int
			durationMs int64
			createdAt  int64
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Difficulty, &won, &r.Moves, &r.Revealed, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = time.Unix(0, createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Stats aggregates results per difficulty, ordered by difficulty.
// An empty player includes everyone.
func (s *Store) Stats(player string) ([]DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), COALESCE(SUM(won), 0),
		        MIN(CASE WHEN won = 1 THEN duration_ms END), COALESCE(AVG(moves), 0)
		 FROM results
		 WHERE ? = '' OR player = ?
		 GROUP BY difficulty
		 ORDER BY difficulty`,
		player, player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	var stats []DifficultyStats
	for rows.Next() {
		var (
			st   DifficultyStats
			best sql.NullInt64
		)
		if err := rows.Scan(&st.Difficulty, &st.Played, &st.Won, &best, &st.AvgMoves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if best.Valid {
			st.BestTime = time.Duration(best.Int64) * time.Millisecond
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Count returns the number of recorded results.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count results: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
