package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	gametypes "github.com/cbodonnell/asteroids/pkg/game/types"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultRedisKey is the key the latest snapshot is stored under
	DefaultRedisKey = "asteroids:snapshot"
)

// RedisStateManager shares the latest snapshot through redis so that other
// processes can read the arena.
type RedisStateManager struct {
	client *redis.Client
	key    string
	// ttl expires a snapshot that is no longer refreshed; zero keeps it forever
	ttl time.Duration
}

type NewRedisStateManagerOptions struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration
}

func NewRedisStateManager(opts NewRedisStateManagerOptions) *RedisStateManager {
	key := opts.Key
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStateManager{
		client: opts.Client,
		key:    key,
		ttl:    opts.TTL,
	}
}

func (m *RedisStateManager) Get(ctx context.Context) (*gametypes.Snapshot, error) {
	b, err := m.client.Get(ctx, m.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	snapshot := &gametypes.Snapshot{}
	if err := json.Unmarshal(b, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}

func (m *RedisStateManager) Set(ctx context.Context, snapshot *gametypes.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	b, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := m.client.Set(ctx, m.key, b, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}
	return nil
}
