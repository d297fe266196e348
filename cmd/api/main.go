package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"loanpages/internal/adapters/crm"
	server "loanpages/internal/adapters/http_server"
	"loanpages/internal/adapters/observability"
	redisad "loanpages/internal/adapters/redis"
	"loanpages/internal/app"
	"loanpages/internal/catalog"
	"loanpages/internal/content"
	"loanpages/internal/shared"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	cat := catalog.New()
	if err := cat.Validate(); err != nil {
		log.Fatal().Err(err).Msg("catalog validation failed")
	}
	log.Info().
		Int("regions", len(cat.Regions())).
		Int("services", len(cat.Services())).
		Int("guides", len(cat.Guides())).
		Int("pages", cat.PageCount()).
		Msg("catalog loaded")

	// deps
	engine := content.NewEngine(cat)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	contentSvc := app.NewContentService(engine, cat, cache, cfg.CacheTTL)
	leads := app.NewLeadService(crm.New(cfg.CRMBase, nil, 10))

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{C: contentSvc, L: leads})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
