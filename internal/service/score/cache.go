package score

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

const standingsCacheKey = "connect4:standings"

// Cache is the subset of a key-value cache the standings decorator needs.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type cachedStandings struct {
	Limit     int        `json:"limit"`
	Standings []Standing `json:"standings"`
}

// CachedStore serves Standings from a cache and drops the cached copy on
// every recorded win.
type CachedStore struct {
	store  Store
	cache  Cache
	ttl    time.Duration
	logger *log.Logger
}

func NewCachedStore(store Store, cache Cache, ttl time.Duration, logger *log.Logger) *CachedStore {
	if logger == nil {
		logger = log.Default()
	}
	return &CachedStore{store: store, cache: cache, ttl: ttl, logger: logger}
}

func (s *CachedStore) RecordWin(ctx context.Context, playerName string) error {
	if err := s.store.RecordWin(ctx, playerName); err != nil {
		return err
	}
	if err := s.cache.Del(ctx, standingsCacheKey); err != nil {
		s.logger.Printf("[SCORES] Failed to invalidate cached standings: %v", err)
	}
	return nil
}

func (s *CachedStore) Standings(ctx context.Context, limit int) ([]Standing, error) {
	if limit <= 0 {
		limit = DefaultStandingsLimit
	}

	if raw, err := s.cache.Get(ctx, standingsCacheKey); err == nil {
		var cached cachedStandings
		if err := json.Unmarshal([]byte(raw), &cached); err == nil && cached.Limit >= limit {
			if len(cached.Standings) > limit {
				return cached.Standings[:limit], nil
			}
			return cached.Standings, nil
		}
	}

	standings, err := s.store.Standings(ctx, limit)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedStandings{Limit: limit, Standings: standings})
	if err == nil {
		if err := s.cache.Set(ctx, standingsCacheKey, payload, s.ttl); err != nil {
			s.logger.Printf("[SCORES] Failed to cache standings: %v", err)
		}
	}
	return standings, nil
}
