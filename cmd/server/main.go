package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"    // optional .env for local runs
	"github.com/labstack/echo/v4" // Echo web framework
	"go.uber.org/zap"

	"github.com/iliyamo/icinema-catalog/internal/catalog"
	"github.com/iliyamo/icinema-catalog/internal/config"
	"github.com/iliyamo/icinema-catalog/internal/database"
	"github.com/iliyamo/icinema-catalog/internal/handler"
	"github.com/iliyamo/icinema-catalog/internal/logging"
	"github.com/iliyamo/icinema-catalog/internal/middleware"
	"github.com/iliyamo/icinema-catalog/internal/model"
	"github.com/iliyamo/icinema-catalog/internal/notify"
	"github.com/iliyamo/icinema-catalog/internal/queue"
	"github.com/iliyamo/icinema-catalog/internal/repository"
	"github.com/iliyamo/icinema-catalog/internal/router"
	"github.com/iliyamo/icinema-catalog/internal/seed"
	"github.com/iliyamo/icinema-catalog/internal/session"
)

// recentNotifications bounds the in-memory feed behind /v1/notifications.
const recentNotifications = 50

func main() {
	_ = godotenv.Load() // a missing .env is fine
	cfg := config.Load()

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		logger.Warn("redis unreachable; cache disabled, sessions in memory, local rate limiting")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	var sessions session.Store = session.NewMemory()
	if cfg.SessionBackend == "redis" && rdb != nil {
		sessions = session.NewRedis(rdb, "session")
	}

	recent := notify.NewRecorder(recentNotifications)
	notifiers := []notify.Notifier{notify.NewLog(logger), recent}
	if cfg.NotifyAMQP {
		notifiers = append(notifiers, notify.NewAMQP(cfg.AMQPURL, cfg.NotifyQueue, logger))
		go queue.StartNotificationConsumer(queue.ConsumerConfig{
			URL:    cfg.AMQPURL,
			Queue:  cfg.NotifyQueue,
			LogDir: cfg.NotifyLogDir,
		}, logger)
	}

	movies, genres := loadCatalog(cfg, logger)
	store := catalog.New(movies, genres, catalog.Options{
		Sessions:   sessions,
		SessionKey: cfg.SessionKey,
		Notifier:   notify.Fanout(notifiers...),
		Logger:     logger,
		Latency:    cfg.AuthLatency,
	})
	store.Restore(context.Background())

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewCatalogHandler(store),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb, store.Revision))
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, store, recent), cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterAdmin(e, handler.NewAdminHandler(store), cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env),
			zap.Int("movies", len(movies)), zap.Int("genres", len(genres)))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdown); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// loadCatalog reads movies and genres from MySQL when DB_HOST is set and
// falls back to the built-in seed otherwise, or when the database is
// unreachable or empty.
func loadCatalog(cfg config.Config, logger *zap.Logger) ([]model.Movie, []model.Genre) {
	if !cfg.UseDatabase() {
		return seed.Movies(), seed.Genres()
	}
	db, err := database.Open(cfg)
	if err != nil {
		logger.Warn("catalog database unavailable; using seed", zap.Error(err))
		return seed.Movies(), seed.Genres()
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	movies, genres, err := repository.NewCatalogRepo(db).Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogEmpty) {
			logger.Info("catalog database is empty; using seed")
		} else {
			logger.Warn("catalog load failed; using seed", zap.Error(err))
		}
		return seed.Movies(), seed.Genres()
	}
	return movies, genres
}
