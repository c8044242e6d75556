package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	defaultLockTTL = 30 * time.Second
	DefaultTable   = "request_idempotency"
)

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

var _ Store = (*SQLXStore)(nil)

type SQLXStore struct {
	db    *sqlx.DB
	table string
	now   func() time.Time
}

// NewSQLXStore returns a store persisting into table (DefaultTable if empty).
func NewSQLXStore(db *sqlx.DB, table string) (*SQLXStore, error) {
	if db == nil {
		return nil, errors.New("idempotency: db is required")
	}
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("idempotency: invalid table name %q", table)
	}
	return &SQLXStore{db: db, table: table, now: time.Now}, nil
}

func (s *SQLXStore) q(query string) string {
	return strings.ReplaceAll(query, "{table}", s.table)
}

type acquireRow struct {
	RequestHash    string         `db:"request_hash"`
	Status         string         `db:"status"`
	ResponseStatus sql.NullInt64  `db:"response_status"`
	ResponseBody   []byte         `db:"response_body"`
	ResponseType   sql.NullString `db:"response_content_type"`
	LockedUntil    time.Time      `db:"locked_until"`
}

const selectForUpdateQuery = `
SELECT request_hash, status, response_status, response_body, response_content_type, locked_until
FROM {table}
WHERE scope = $1 AND idempotency_key = $2
FOR UPDATE`

func (s *SQLXStore) Acquire(ctx context.Context, request Request) (Decision, error) {
	request, err := request.normalize()
	if err != nil {
		return Decision{}, err
	}

	lockTTL := request.LockTTL
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	now := s.now().UTC()
	lockUntil := now.Add(lockTTL)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var existing acquireRow
	err = tx.GetContext(ctx, &existing, s.q(selectForUpdateQuery), request.Scope, request.Key)
	if errors.Is(err, sql.ErrNoRows) {
		// No row to lock yet: a concurrent first request may insert the same
		// key, so the insert yields instead of failing on the primary key.
		const insertQuery = `
INSERT INTO {table} (
	scope, idempotency_key, request_hash, status, locked_until, created_at, updated_at
) VALUES ($1, $2, $3, 'in_progress', $4, now(), now())
ON CONFLICT (scope, idempotency_key) DO NOTHING`

		result, err := tx.ExecContext(ctx, s.q(insertQuery), request.Scope, request.Key, request.RequestHash, lockUntil)
		if err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to insert key: %w", err)
		}
		inserted, err := result.RowsAffected()
		if err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to read affected rows: %w", err)
		}
		if inserted == 1 {
			return s.commit(tx, Decision{Type: DecisionAcquired})
		}

		err = tx.GetContext(ctx, &existing, s.q(selectForUpdateQuery), request.Scope, request.Key)
		if errors.Is(err, sql.ErrNoRows) {
			// the other claim was released between our insert and select
			return s.commit(tx, Decision{Type: DecisionInProgress})
		}
	}
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to query key: %w", err)
	}

	switch {
	case existing.RequestHash != request.RequestHash:
		return s.commit(tx, Decision{Type: DecisionConflict})

	case existing.Status == "completed":
		decision := Decision{
			Type: DecisionReplay,
			Body: append([]byte(nil), existing.ResponseBody...),
		}
		if existing.ResponseStatus.Valid {
			decision.StatusCode = int(existing.ResponseStatus.Int64)
		}
		if existing.ResponseType.Valid {
			decision.ContentType = existing.ResponseType.String
		}
		return s.commit(tx, decision)

	case existing.LockedUntil.After(now):
		return s.commit(tx, Decision{Type: DecisionInProgress})
	}

	// stale in-progress claim
	const reacquireQuery = `
UPDATE {table}
SET status = 'in_progress', locked_until = $3, updated_at = now()
WHERE scope = $1 AND idempotency_key = $2`

	if _, err := tx.ExecContext(ctx, s.q(reacquireQuery), request.Scope, request.Key, lockUntil); err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to reacquire key: %w", err)
	}
	return s.commit(tx, Decision{Type: DecisionAcquired})
}

func (s *SQLXStore) commit(tx *sqlx.Tx, decision Decision) (Decision, error) {
	if err := tx.Commit(); err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to commit %s decision: %w", decision.Type, err)
	}
	return decision, nil
}

func (s *SQLXStore) Complete(ctx context.Context, request Request, response StoredResponse) error {
	request, err := request.normalize()
	if err != nil {
		return err
	}

	const updateQuery = `
UPDATE {table}
SET
	status = 'completed',
	response_status = $4,
	response_body = $5,
	response_content_type = $6,
	locked_until = now(),
	completed_at = now(),
	updated_at = now()
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3`

	result, err := s.db.ExecContext(ctx, s.q(updateQuery),
		request.Scope, request.Key, request.RequestHash,
		response.StatusCode, response.Body, strings.TrimSpace(response.ContentType),
	)
	if err != nil {
		return fmt.Errorf("idempotency: failed to persist response: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency: failed to read affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return errors.New("idempotency: key not found for completion")
	}
	return nil
}

func (s *SQLXStore) Release(ctx context.Context, request Request) error {
	request, err := request.normalize()
	if err != nil {
		return err
	}

	const deleteQuery = `
DELETE FROM {table}
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3 AND status = 'in_progress'`

	if _, err := s.db.ExecContext(ctx, s.q(deleteQuery), request.Scope, request.Key, request.RequestHash); err != nil {
		return fmt.Errorf("idempotency: failed to release key: %w", err)
	}
	return nil
}
