package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	CatalogLoadDurationSeconds metric.Float64Histogram
	SearchesTotal              metric.Int64Counter
	SearchCacheHitsTotal       metric.Int64Counter
	FavoriteTogglesTotal       metric.Int64Counter
	ReviewSubmissionsTotal     metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("CampusStudySpots")
		var err error
		m := &AppMetrics{}

		m.CatalogLoadDurationSeconds, err = meter.Float64Histogram(
			"catalog_load_duration_seconds",
			metric.WithDescription("Duration of the initial catalog load in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create catalog_load_duration_seconds: %v", err)
		}

		m.SearchesTotal, err = meter.Int64Counter(
			"spot_searches_total",
			metric.WithDescription("Total number of spot search/filter passes executed"),
			metric.WithUnit("{search}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create spot_searches_total: %v", err)
		}

		m.SearchCacheHitsTotal, err = meter.Int64Counter(
			"spot_search_cache_hits_total",
			metric.WithDescription("Total number of filter passes served from the result cache"),
			metric.WithUnit("{hit}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create spot_search_cache_hits_total: %v", err)
		}

		m.FavoriteTogglesTotal, err = meter.Int64Counter(
			"favorite_toggles_total",
			metric.WithDescription("Total number of favorite toggle mutations"),
			metric.WithUnit("{toggle}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create favorite_toggles_total: %v", err)
		}

		m.ReviewSubmissionsTotal, err = meter.Int64Counter(
			"review_submissions_total",
			metric.WithDescription("Total number of accepted review submissions"),
			metric.WithUnit("{review}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create review_submissions_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
