package session

import (
	"github.com/rs/zerolog"
)

// NewStore returns a Redis-backed store when opts has an address, otherwise
// the in-memory store. A failed Redis connection falls back to memory so a
// single-process deployment keeps working without the cache.
func NewStore(opts RedisOptions, logger zerolog.Logger) Store {
	if opts.Addr != "" {
		store, err := NewRedisStore(opts, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis connection failed, falling back to in-memory session store")
			return NewMemoryStore(logger)
		}
		logger.Info().Str("addr", opts.Addr).Msg("Using redis session store")
		return store
	}

	logger.Info().Msg("Using in-memory session store")
	return NewMemoryStore(logger)
}
