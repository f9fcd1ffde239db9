package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	database "github.com/FACorreiaa/go-campus-study-spots/app/db"
	"github.com/FACorreiaa/go-campus-study-spots/config"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/catalog"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/favorites"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/location"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/maps"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/reviews"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/spots"
	"github.com/FACorreiaa/go-campus-study-spots/internal/types"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client

	CatalogService   *catalog.ServiceImpl
	SearchController *spots.SearchController
	CatalogHandler   *catalog.Handler
	SpotsHandler     *spots.Handler
	FavoritesHandler *favorites.Handler
	ReviewsHandler   *reviews.Handler
	LocationHandler  *location.Handler
	MapsHandler      *maps.Handler
}

// NewContainer initializes and returns a new dependency container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	campusTZ, err := time.LoadLocation(cfg.Campus.Timezone)
	if err != nil {
		logger.Error("Failed to load campus timezone", slog.Any("error", err))
		return nil, fmt.Errorf("invalid campus timezone %q: %w", cfg.Campus.Timezone, err)
	}

	// Catalog data source
	var catalogRepo catalog.Repository
	var reviewSink reviews.Sink
	switch cfg.Catalog.Provider {
	case "postgres":
		dbConfig, err := database.NewDatabaseConfig(cfg, logger)
		if err != nil {
			logger.Error("Failed to generate database config", slog.Any("error", err))
			return nil, err
		}
		pool, err := database.Init(dbConfig.ConnectionURL, logger)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.Any("error", err))
			return nil, err
		}
		c.Pool = pool
		pgRepo := catalog.NewPostgresRepository(pool, logger)
		catalogRepo = pgRepo
		reviewSink = pgRepo
	case "sample", "":
		delay := time.Duration(cfg.Catalog.SimulatedDelayMS) * time.Millisecond
		catalogRepo = catalog.NewSampleRepository(delay, logger)
	default:
		return nil, fmt.Errorf("unknown catalog provider %q", cfg.Catalog.Provider)
	}

	// Favorites store: redis when configured, in-process otherwise
	var favoritesKV favorites.KV
	if cfg.Repositories.Redis.Host != "" {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Repositories.Redis.Host, cfg.Repositories.Redis.Port),
			Password: cfg.Repositories.Redis.Password,
			DB:       cfg.Repositories.Redis.DB,
		})
		favoritesKV = favorites.NewRedisKV(c.Redis)
	} else {
		favoritesKV = favorites.NewMemoryKV()
	}

	catalogService := catalog.NewService(catalogRepo, logger)
	favoritesService := favorites.NewService(favoritesKV, logger)
	locationTracker := location.NewTracker(logger)
	reviewsService := reviews.NewService(catalogService, reviewSink, logger)

	cacheTTL := time.Duration(cfg.Search.CacheTTLMinutes) * time.Minute
	spotsService := spots.NewService(catalogService, favoritesService, locationTracker, campusTZ, cacheTTL, logger)

	// Embeddable debounced search front-end for interactive consumers.
	debounce := time.Duration(cfg.Search.DebounceMS) * time.Millisecond
	c.SearchController = spots.NewSearchController(spotsService, debounce)

	campusCenter := types.Coordinates{
		Latitude:  cfg.Campus.CenterLatitude,
		Longitude: cfg.Campus.CenterLongitude,
	}

	c.CatalogService = catalogService
	c.CatalogHandler = catalog.NewHandler(catalogService, logger)
	c.SpotsHandler = spots.NewHandler(spotsService, logger)
	c.FavoritesHandler = favorites.NewHandler(favoritesService, catalogService, logger)
	c.ReviewsHandler = reviews.NewHandler(reviewsService, logger)
	c.LocationHandler = location.NewHandler(locationTracker, logger)
	c.MapsHandler = maps.NewHandler(catalogService, campusCenter, logger)

	return c, nil
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.SearchController != nil {
		c.SearchController.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("Failed to close redis client", slog.Any("error", err))
		}
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	if c.Pool == nil {
		return true
	}
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}

// RunMigrations runs database migrations
func (c *Container) RunMigrations(connectionURL string) error {
	return database.RunMigrations(connectionURL, c.Logger)
}
