package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisKeyPrefix namespaces session keys in a shared Redis instance.
const redisKeyPrefix = "wpbridge:session:"

// RedisStore keeps sessions in Redis with the entry TTL delegated to Redis
// key expiry, so multi-process deployments share one session space.
type RedisStore struct {
	client *redis.Client
	logger zerolog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(opts RedisOptions, logger zerolog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithCancel(context.Background())

	if err := client.Ping(ctx).Err(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{
		client: client,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Save stores the session under its id with a TTL matching its expiry.
// Already-expired sessions are not written.
func (st *RedisStore) Save(session *Session) error {
	ttl := session.TTL()
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := redisKeyPrefix + session.ID
	if err := st.client.Set(st.ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	st.logger.Debug().Str("session_id", session.ID).Dur("ttl", ttl).
		Msg("Saved session to redis")
	return nil
}

// Get returns the session for id. Redis expiry makes expired entries absent;
// the wall-clock check covers clock drift between processes.
func (st *RedisStore) Get(id string) (*Session, bool) {
	key := redisKeyPrefix + id

	data, err := st.client.Get(st.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		st.logger.Warn().Err(err).Str("session_id", id).Msg("Failed to read session from redis")
		return nil, false
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		st.logger.Warn().Err(err).Str("session_id", id).Msg("Failed to unmarshal session")
		st.Delete(id)
		return nil, false
	}

	if session.IsExpired() {
		st.Delete(id)
		return nil, false
	}

	return &session, true
}

// Delete removes the session for id.
func (st *RedisStore) Delete(id string) {
	if err := st.client.Del(st.ctx, redisKeyPrefix+id).Err(); err != nil {
		st.logger.Warn().Err(err).Str("session_id", id).Msg("Failed to delete session from redis")
	}
}

// Close releases the Redis connection.
func (st *RedisStore) Close() error {
	st.cancel()
	return st.client.Close()
}
