// README: Case store backed by PostgreSQL.
package cases

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roadside/internal/modules/dispatch"
	"roadside/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, c *Case) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO cases (
			id, session_id, customer_name, vehicle, location, issue,
			policy_level, is_covered, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(c.ID),
		string(c.SessionID),
		c.CustomerName,
		c.Vehicle,
		c.Location,
		c.Issue,
		c.PolicyLevel,
		c.IsCovered,
		string(c.Status),
		c.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Case, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, session_id, customer_name, vehicle, location, issue,
		       policy_level, is_covered, status, decision,
		       created_at, dispatched_at, closed_at
		FROM cases
		WHERE id = $1`, string(id),
	)

	var c Case
	var decision sql.NullString
	var dispatchedAt, closedAt sql.NullTime

	err := row.Scan(
		&c.ID, &c.SessionID, &c.CustomerName, &c.Vehicle, &c.Location, &c.Issue,
		&c.PolicyLevel, &c.IsCovered, &c.Status, &decision,
		&c.CreatedAt, &dispatchedAt, &closedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if decision.Valid {
		var d dispatch.Decision
		if err := json.Unmarshal([]byte(decision.String), &d); err != nil {
			return nil, fmt.Errorf("cases: corrupt decision for %s: %w", c.ID, err)
		}
		c.Decision = &d
	}
	c.DispatchedAt = toTimePtr(dispatchedAt)
	c.ClosedAt = toTimePtr(closedAt)
	return &c, nil
}

// SetDecision stores the decision snapshot and moves the case to
// dispatched, guarded by the current status.
func (s *Store) SetDecision(ctx context.Context, id types.ID, from Status, d dispatch.Decision) (bool, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return false, err
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE cases
		SET status = $1, decision = $2, dispatched_at = NOW()
		WHERE id = $3 AND status = $4`,
		string(StatusDispatched),
		string(raw),
		string(id),
		string(from),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatus performs a guarded transition without touching the decision.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE cases
		SET status = $1,
		    closed_at = CASE WHEN $1 = 'closed' THEN NOW() ELSE closed_at END
		WHERE id = $2 AND status = $3`,
		string(to),
		string(id),
		string(from),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListBySession returns a session's cases, newest first.
func (s *Store) ListBySession(ctx context.Context, sessionID types.ID) ([]types.ID, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id FROM cases
		WHERE session_id = $1
		ORDER BY created_at DESC`, string(sessionID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []types.ID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, types.ID(id))
	}
	return ids, rows.Err()
}

func toTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
