package bootstrap

import (
	"context"
	"log"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/repository/postgres"
	"github.com/iamasit07/4-in-a-row/console/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/console/internal/service/score"
)

// Scores is the score store a binary runs with plus whatever it holds open.
type Scores struct {
	Store score.Store
	// Persistent is false when no database is configured and Store is a NopStore.
	Persistent bool

	closers []func() error
}

func (s *Scores) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			log.Printf("[BOOT] Close failed: %v", err)
		}
	}
}

// OpenScores connects the database and the optional standings cache. Without
// DATABASE_URL, or when the database cannot be reached, scores are disabled
// and the caller keeps running.
func OpenScores(ctx context.Context, cfg *config.Config) *Scores {
	if cfg.DatabaseURL == "" {
		log.Println("[BOOT] DATABASE_URL not set, high scores are disabled")
		return disabledScores()
	}

	db, err := postgres.Open(ctx, cfg.DBDriver, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
	if err != nil {
		log.Printf("[BOOT] Warning: %v. High scores are disabled.", err)
		return disabledScores()
	}

	log.Println("[BOOT] Running database migrations...")
	if err := postgres.RunMigrations(ctx, db); err != nil {
		log.Printf("[BOOT] Warning: %v. High scores are disabled.", err)
		db.Close()
		return disabledScores()
	}

	s := &Scores{
		Store:      postgres.NewScoreRepo(db),
		Persistent: true,
		closers:    []func() error{db.Close},
	}

	if client := redis.InitRedis(ctx, cfg.RedisURL, cfg.RedisPassword); client != nil {
		s.Store = score.NewCachedStore(s.Store, redis.NewRedisCache(client), cfg.StandingsCacheTTL, nil)
		s.closers = append([]func() error{client.Close}, s.closers...)
	}

	return s
}

func disabledScores() *Scores {
	return &Scores{Store: score.NopStore{}}
}
