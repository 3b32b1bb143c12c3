package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "stay_scout/internal/adapters/http_server"
	"stay_scout/internal/adapters/observability"
	redisad "stay_scout/internal/adapters/redis"
	"stay_scout/internal/app"
	"stay_scout/internal/domain"
	"stay_scout/internal/shared"
	"stay_scout/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog: fixed demo seed, owned in process for the session
	store := memory.New()
	log.Info().Msg("catalog seeded")

	var cache domain.Cache
	if cfg.CacheOff {
		cache = redisad.NewNoop()
		log.Info().Msg("match cache disabled")
	} else {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	q := app.NewMatchQueryService(store, cache, cfg.CacheTTL)
	c := app.NewCatalogCommandService(store, cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q: q, C: c,
		Signals: rate.NewLimiter(rate.Limit(cfg.SignalRPS), cfg.SignalBurst),
		TopN:    cfg.RankTopN,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
