package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/config"
	"github.com/bluestock/ipoboard/internal/infrastructure/database"
	"github.com/bluestock/ipoboard/internal/infrastructure/repository"
	"github.com/bluestock/ipoboard/internal/present/rest"
	"github.com/bluestock/ipoboard/internal/present/rest/middleware"
	"github.com/bluestock/ipoboard/internal/service"
	"github.com/bluestock/ipoboard/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		cleanup, err := setupTraceProvider(ctx, conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer cleanup()
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)

	var db *gorm.DB
	if conf.Server.PostgresDsn != "" {
		db, err = database.NewPostgres(conf.Server.PostgresDsn)
		if err != nil {
			slog.Error("failed to connect database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := database.MigratePostgres(db); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	sessionRepo := repository.NewSessionRepository(rdb)
	sessions := usecase.NewSessionUsecase(sessionRepo, conf.Server.SessionTTL())
	auth := service.NewAuthService(conf.Server.SessionSecret, conf.Server.SessionTTL(), sessions)
	signal := service.NewSignalService(rdb)

	ipos := usecase.NewCollection(usecase.IPODefinition(),
		newCollectionRepo(ctx, db, ipoboard.CollectionIPOs, repository.SeedIPOs(), conf.Server.SeedData), signal)
	subscriptions := usecase.NewCollection(usecase.SubscriptionDefinition(),
		newCollectionRepo(ctx, db, ipoboard.CollectionSubscriptions, repository.SeedSubscriptions(), conf.Server.SeedData), signal)
	allotments := usecase.NewCollection(usecase.AllotmentDefinition(),
		newCollectionRepo(ctx, db, ipoboard.CollectionAllotments, repository.SeedAllotments(), conf.Server.SeedData), signal)
	faqs := usecase.NewCollection(usecase.FAQDefinition(),
		newCollectionRepo(ctx, db, ipoboard.CollectionFAQs, repository.SeedFAQs(), conf.Server.SeedData), signal)
	resources := usecase.NewCollection(usecase.ResourceDefinition(),
		newCollectionRepo(ctx, db, ipoboard.CollectionResources, repository.SeedResources(), conf.Server.SeedData), signal)

	var summaries *repository.SummaryCache
	if conf.Server.MemcachedAddr != "" {
		summaries = repository.NewSummaryCache(database.NewMemcached(conf.Server.MemcachedAddr), 300)
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("ipoboard"))
	}

	authmw := middleware.NewAuthMiddleware(auth)
	e.Use(authmw.IdentifyIdentity)

	handler := rest.NewHandler(conf.Site, sessions, auth, signal,
		ipos, subscriptions, allotments, faqs, resources, summaries)
	handler.RegisterRoutes(e, authmw)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

// newCollectionRepo picks the storage backend for one collection:
// Postgres when a DSN is configured, in-memory otherwise. Seeding is
// idempotent; existing rows win.
func newCollectionRepo[T ipoboard.Record](ctx context.Context, db *gorm.DB, name string, seed []T, seedData bool) usecase.CollectionRepository[T] {
	if db == nil {
		if seedData {
			return repository.NewMemory(seed...)
		}
		return repository.NewMemory[T]()
	}

	repo := repository.NewPersistent[T](db, name)
	if seedData {
		for _, record := range seed {
			if err := repo.Create(ctx, record); err != nil {
				slog.Warn("failed to seed record",
					slog.String("collection", name),
					slog.String("error", err.Error()),
				)
			}
		}
	}
	return repo
}

func setupTraceProvider(ctx context.Context, endpoint string) (func(), error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)

	return func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			slog.Warn("failed to shut down trace provider", slog.String("error", err.Error()))
		}
	}, nil
}
