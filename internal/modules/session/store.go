// README: Session history store backed by Redis lists.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"roadside/internal/types"
)

const historyKeyPrefix = "session:%s:history"

// Store keeps per-session conversation history in Redis so the API layer
// stays stateless and sessions survive process restarts.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

// Append adds turns to the session history and refreshes its TTL.
func (s *Store) Append(ctx context.Context, id types.ID, turns ...Turn) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]interface{}, len(turns))
	for i, t := range turns {
		raw, err := json.Marshal(t)
		if err != nil {
			return err
		}
		values[i] = raw
	}

	key := historyKey(id)
	pipe := s.redis.Pipeline()
	pipe.RPush(ctx, key, values...)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// History returns the full history in order. A session that was never
// seen (or has expired) yields an empty history, not an error.
func (s *Store) History(ctx context.Context, id types.ID) ([]Turn, error) {
	raw, err := s.redis.LRange(ctx, historyKey(id), 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var t Turn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			return nil, fmt.Errorf("session: corrupt history entry: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// Clear drops a session's history.
func (s *Store) Clear(ctx context.Context, id types.ID) error {
	return s.redis.Del(ctx, historyKey(id)).Err()
}

func historyKey(id types.ID) string {
	return fmt.Sprintf(historyKeyPrefix, string(id))
}
