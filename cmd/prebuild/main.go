// prebuild warms the bundle cache for the full enumerated key space, the
// build-time half of the pre-generation scheme. Resolution is pure, so the
// fan-out needs no coordination beyond a worker cap.
package main

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"loanpages/internal/adapters/observability"
	redisad "loanpages/internal/adapters/redis"
	"loanpages/internal/app"
	"loanpages/internal/catalog"
	"loanpages/internal/content"
	"loanpages/internal/domain"
	"loanpages/internal/shared"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	cat := catalog.New()
	if err := cat.Validate(); err != nil {
		log.Fatal().Err(err).Msg("catalog validation failed")
	}

	engine := content.NewEngine(cat)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewContentService(engine, cat, cache, cfg.CacheTTL)

	log.Info().
		Int("pages", cat.PageCount()).
		Int("workers", cfg.Workers).
		Msg("prebuild starting")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var done atomic.Int64

	for key := range engine.Enumerate() {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(k domain.PageKey) {
			defer wg.Done()
			defer sem.Release(1)

			b := svc.GetBundle(ctx, k.Region, k.Locality, k.Service)
			if b.Title == "" {
				log.Warn().Str("region", k.Region).Str("locality", k.Locality).Str("service", k.Service).Msg("empty title resolved")
				return
			}
			done.Add(1)
		}(key)
	}

	wg.Wait()
	log.Info().Int64("pages", done.Load()).Msg("prebuild completed")
}
