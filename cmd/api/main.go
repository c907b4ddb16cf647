// @title MoodScript API
// @description API for mood journaling app "MoodScript"
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/moodscript/internal/api"
	"github.com/limbo/moodscript/internal/metrics"
	"github.com/limbo/moodscript/internal/repository"
	"github.com/limbo/moodscript/internal/service"
	"github.com/limbo/moodscript/pkg/cleanup"
	"github.com/limbo/moodscript/pkg/config"
	jwtservice "github.com/limbo/moodscript/pkg/jwt_service"
	"github.com/limbo/moodscript/pkg/pixabay"
	"github.com/limbo/moodscript/pkg/ratelimit"
	"github.com/limbo/moodscript/pkg/zenquotes"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	pool, err := repository.NewPool(connectCtx, &dbCfg)
	cancel()
	if err != nil {
		log.Fatal("connecting to postgres: " + err.Error())
	}

	usersRepo := repository.NewUsersRepo(pool)
	entriesRepo := repository.NewEntriesRepo(pool)
	collectionsRepo := repository.NewCollectionsRepo(pool)
	draftsRepo := repository.NewDraftsRepo(pool)

	var images service.ImageSearcher
	if key := cfg.GetString("PIXABAY_API_KEY"); key != "" {
		images = pixabay.New(cfg.GetStringOr("PIXABAY_URL", pixabay.DefaultURL), key,
			pixabay.WithObserver(metrics.OutboundObserver("pixabay")))
	} else {
		slog.Warn("PIXABAY_API_KEY is empty, entries will have no illustrations")
	}
	quotes := zenquotes.New(cfg.GetStringOr("ZENQUOTES_URL", zenquotes.DefaultURL),
		zenquotes.WithObserver(metrics.OutboundObserver("zenquotes")))

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		EntriesService:     service.NewEntriesService(entriesRepo, collectionsRepo, draftsRepo, images),
		CollectionsService: service.NewCollectionsService(collectionsRepo),
		DraftsService:      service.NewDraftsService(draftsRepo),
		AnalyticsService:   service.NewAnalyticsService(usersRepo, entriesRepo),
		PromptService:      service.NewPromptService(quotes),
		JwtService:         jwtservice.NewWithTTL(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		RateLimiter:        setupRateLimiter(ctx, cfg),
	})
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

// Without Redis every request is let through.
func setupRateLimiter(ctx context.Context, cfg *config.Config) api.RateLimiter {
	addr := cfg.GetString("REDIS_ADDRESS")
	if addr == "" {
		slog.Warn("REDIS_ADDRESS is empty, rate limiting disabled")
		return ratelimit.AllowAll{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis is unreachable, limiter will fail open", slog.String("error", err.Error()))
	}
	limits := ratelimit.DefaultConfig()
	limits.Capacity = cfg.GetInt("RATE_LIMIT_CAPACITY", limits.Capacity)
	limits.Refill = cfg.GetInt("RATE_LIMIT_REFILL", limits.Refill)
	limits.Interval = cfg.GetDuration("RATE_LIMIT_INTERVAL", limits.Interval)
	return ratelimit.NewRedisLimiter(client, limits)
}
