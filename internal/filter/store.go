package filter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"oddsdesk/internal/models"
)

// Store is the durable side of filter persistence: one JSON blob per view in
// redis. It is the only component in the filter layer with I/O; the codec and
// preset engine stay pure.
type Store struct {
	RDB    *redis.Client
	Prefix string
	TTL    time.Duration
	Logger *zap.Logger
}

func (s *Store) key(view string) string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "oddsdesk:filters:"
	}
	return prefix + view
}

// Load returns the persisted state for a view, sanitized, or the defaults
// when nothing is stored. Malformed blobs recover to the defaults rather
// than surfacing an error.
func (s *Store) Load(ctx context.Context, view string) (models.FilterState, error) {
	if s == nil || s.RDB == nil {
		return DefaultState(), nil
	}
	raw, err := s.RDB.Get(ctx, s.key(view)).Bytes()
	if errors.Is(err, redis.Nil) {
		return DefaultState(), nil
	}
	if err != nil {
		return DefaultState(), err
	}
	var state models.FilterState
	if err := json.Unmarshal(raw, &state); err != nil {
		if s.Logger != nil {
			s.Logger.Warn("discarding malformed filter state", zap.String("view", view), zap.Error(err))
		}
		return DefaultState(), nil
	}
	return Sanitize(state), nil
}

// Save persists the state as a single JSON blob.
func (s *Store) Save(ctx context.Context, view string, state models.FilterState) error {
	if s == nil || s.RDB == nil {
		return nil
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, s.key(view), raw, s.TTL).Err()
}
