// README: Chat quota persistence.
package quota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles chat_quota persistence.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseToken atomically checks the monthly quota and deducts one token.
// The counter resets to DefaultTokens when last_reset_month is behind the
// current month. Returns ErrExhausted when 0 rows are updated (quota
// spent or session absent).
func (s *Store) UseToken(ctx context.Context, sessionID string) error {
	month := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE chat_quota SET
			tokens_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE tokens_remaining - 1 END,
			last_reset_month = $1
		WHERE session_id = $3 AND (last_reset_month < $1 OR tokens_remaining > 0)
	`, month, DefaultTokens, sessionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExhausted
	}
	return nil
}

// EnsureSession inserts a quota row with the default allowance, silently
// skipping if it already exists.
func (s *Store) EnsureSession(ctx context.Context, sessionID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO chat_quota (session_id, tokens_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO NOTHING
	`, sessionID, DefaultTokens, time.Now().Format("2006-01"))
	return err
}
