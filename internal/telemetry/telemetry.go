// Package telemetry records aggregate password-check outcomes (verdict
// and score bucket counts) to PostgreSQL, for operators who want to track
// the strength distribution of passwords their application rejects or
// accepts over time. It never records the password itself, nor any
// substring, issue message, or other value derived from it — only a
// verdict label and a 10-wide score bucket.
package telemetry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sink records aggregate check outcomes to PostgreSQL.
type Sink struct {
	pool *pgxpool.Pool
}

// Connect opens a connection pool to connStr and verifies it is reachable.
func Connect(ctx context.Context, connStr string) (*Sink, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("telemetry: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("telemetry: ping: %w", err)
	}
	return &Sink{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *Sink) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the telemetry_counters table if it does not already
// exist.
func (s *Sink) InitSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS telemetry_counters (
			verdict     TEXT NOT NULL,
			score_bucket SMALLINT NOT NULL,
			count       BIGINT NOT NULL DEFAULT 0,
			PRIMARY KEY (verdict, score_bucket)
		);`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("telemetry: init schema: %w", err)
	}
	return nil
}

// scoreBucket maps a 0-100 score to one of ten buckets: 0 covers
// [0,10), 1 covers [10,20), ..., 9 covers [90,100].
func scoreBucket(score int) int {
	b := score / 10
	if b > 9 {
		b = 9
	}
	if b < 0 {
		b = 0
	}
	return b
}

// Record increments the counter for the given verdict and score's bucket.
func (s *Sink) Record(ctx context.Context, verdict string, score int) error {
	const upsert = `
		INSERT INTO telemetry_counters (verdict, score_bucket, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (verdict, score_bucket) DO UPDATE
		SET count = telemetry_counters.count + 1;`
	_, err := s.pool.Exec(ctx, upsert, verdict, scoreBucket(score))
	if err != nil {
		return fmt.Errorf("telemetry: record: %w", err)
	}
	return nil
}

// Counts reports the current count for every (verdict, score_bucket) pair
// that has been recorded at least once.
func (s *Sink) Counts(ctx context.Context) (map[string]map[int]int64, error) {
	rows, err := s.pool.Query(ctx, `SELECT verdict, score_bucket, count FROM telemetry_counters`)
	if err != nil {
		return nil, fmt.Errorf("telemetry: counts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]map[int]int64)
	for rows.Next() {
		var verdict string
		var bucket int
		var count int64
		if err := rows.Scan(&verdict, &bucket, &count); err != nil {
			return nil, fmt.Errorf("telemetry: scan: %w", err)
		}
		if out[verdict] == nil {
			out[verdict] = make(map[int]int64)
		}
		out[verdict][bucket] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("telemetry: rows: %w", err)
	}
	return out, nil
}
