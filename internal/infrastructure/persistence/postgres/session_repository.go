package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"kaamwala/internal/database"
	"kaamwala/internal/session"
)

// SessionRepository stores session entries in the session_entries table.
// Expired rows are invisible to reads and are removed by PurgeExpired.
type SessionRepository struct {
	db     database.DB
	logger *log.Logger
	now    func() time.Time
}

func NewSessionRepository(db database.DB, logger *log.Logger) *SessionRepository {
	return &SessionRepository{db: db, logger: logger, now: time.Now}
}

var (
	_ session.Backend = (*SessionRepository)(nil)

	errNilDB = errors.New("nil db")
)

const farFuture = 100 * 365 * 24 * time.Hour

func (r *SessionRepository) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		ttl = farFuture
	}
	return r.now().UTC().Add(ttl)
}

func (r *SessionRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if r == nil || r.db == nil {
		return nil, false, errNilDB
	}
	rows, err := r.db.Query(ctx,
		`SELECT value FROM session_entries WHERE key = $1 AND expires_at > $2`,
		key, r.now().UTC(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("get session entry: %w", err)
	}
	return scanValue(rows)
}

func (r *SessionRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if r == nil || r.db == nil {
		return errNilDB
	}
	_, err := r.db.Exec(ctx, `
INSERT INTO session_entries (key, value, expires_at, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at`,
		key, value, r.expiry(ttl), r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set session entry: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, keys ...string) error {
	if r == nil || r.db == nil {
		return errNilDB
	}
	if len(keys) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM session_entries WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("delete session entries: %w", err)
	}
	return nil
}

// Take deletes the row and returns its value in one statement, so two
// concurrent takers cannot both see it.
func (r *SessionRepository) Take(ctx context.Context, key string) ([]byte, bool, error) {
	if r == nil || r.db == nil {
		return nil, false, errNilDB
	}
	rows, err := r.db.Query(ctx,
		`DELETE FROM session_entries WHERE key = $1 AND expires_at > $2 RETURNING value`,
		key, r.now().UTC(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("take session entry: %w", err)
	}
	return scanValue(rows)
}

// SetIfNotExists inserts the row, or overwrites it only when the existing
// row has expired.
func (r *SessionRepository) SetIfNotExists(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if r == nil || r.db == nil {
		return false, errNilDB
	}
	now := r.now().UTC()
	n, err := r.db.Exec(ctx, `
INSERT INTO session_entries (key, value, expires_at, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at
WHERE session_entries.expires_at <= $4`,
		key, value, r.expiry(ttl), now,
	)
	if err != nil {
		return false, fmt.Errorf("set session entry if absent: %w", err)
	}
	return n == 1, nil
}

func (r *SessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, errNilDB
	}
	n, err := r.db.Exec(ctx, `DELETE FROM session_entries WHERE expires_at <= $1`, r.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge session entries: %w", err)
	}
	if n > 0 && r.logger != nil {
		r.logger.Printf("[SessionRepository] purged expired entries | count=%d", n)
	}
	return n, nil
}

// RunJanitor purges expired rows every interval until ctx is done.
func (r *SessionRepository) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := r.PurgeExpired(ctx); err != nil && r.logger != nil && ctx.Err() == nil {
				r.logger.Printf("[SessionRepository] purge failed | err=%v", err)
			}
		}
	}
}

func scanValue(rows database.Rows) ([]byte, bool, error) {
	defer rows.Close()
	if !rows.Next() {
		return nil, false, rows.Err()
	}
	var b []byte
	if err := rows.Scan(&b); err != nil {
		return nil, false, err
	}
	return b, true, rows.Err()
}
