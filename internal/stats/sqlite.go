package stats

import (
	"context"
	"database/sql"
	"fmt"
)

// Mode names a per-day boolean counter.
type Mode string

const (
	ModeHard Mode = "hard"
	ModeDark Mode = "dark"
)

// ScoreCount is one (score, count) pair for a day.
type ScoreCount struct {
	Score uint8 `json:"score"`
	Count int64 `json:"count"`
}

// SQLiteSink keeps counters in the tables created by internal/db migrations.
type SQLiteSink struct{ db *sql.DB }

func NewSQLiteSink(db *sql.DB) *SQLiteSink { return &SQLiteSink{db: db} }

func (s *SQLiteSink) IncPosts(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO post_counts(id, count) VALUES(1, 1)
ON CONFLICT(id) DO UPDATE SET count = count + 1`)
	if err != nil {
		return fmt.Errorf("inc posts: %w", err)
	}
	return nil
}

func (s *SQLiteSink) IncGame(ctx context.Context, day uint32, score uint8) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO game_counts(day, score, count) VALUES(?, ?, 1)
ON CONFLICT(day, score) DO UPDATE SET count = count + 1,
updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')`, day, score)
	if err != nil {
		return fmt.Errorf("inc game %d/%d: %w", day, score, err)
	}
	return nil
}

func (s *SQLiteSink) IncHardMode(ctx context.Context, day uint32) error {
	return s.incMode(ctx, day, ModeHard)
}

func (s *SQLiteSink) IncDarkMode(ctx context.Context, day uint32) error {
	return s.incMode(ctx, day, ModeDark)
}

func (s *SQLiteSink) incMode(ctx context.Context, day uint32, mode Mode) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mode_counts(day, mode, count) VALUES(?, ?, 1)
ON CONFLICT(day, mode) DO UPDATE SET count = count + 1,
updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')`, day, string(mode))
	if err != nil {
		return fmt.Errorf("inc %s mode %d: %w", mode, day, err)
	}
	return nil
}

// GameCounts returns the score counters for day, ascending by score.
func (s *SQLiteSink) GameCounts(ctx context.Context, day uint32) ([]ScoreCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT score, count
FROM game_counts
WHERE day=? AND count > 0
ORDER BY score ASC`, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ScoreCount
	for rows.Next() {
		var c ScoreCount
		if err := rows.Scan(&c.Score, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ModeCount returns the hard or dark counter for day; zero if never bumped.
func (s *SQLiteSink) ModeCount(ctx context.Context, day uint32, mode Mode) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(count), 0) FROM mode_counts WHERE day=? AND mode=?",
		day, string(mode),
	).Scan(&n)
	return n, err
}

// PostCount returns the number of observed posts.
func (s *SQLiteSink) PostCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(count), 0) FROM post_counts",
	).Scan(&n)
	return n, err
}
