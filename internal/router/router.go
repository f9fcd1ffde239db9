package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-campus-study-spots/internal/api/catalog"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/favorites"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/location"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/maps"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/reviews"
	"github.com/FACorreiaa/go-campus-study-spots/internal/api/spots"
)

// Config contains dependencies needed for the router setup
type Config struct {
	CatalogHandler   *catalog.Handler
	SpotsHandler     *spots.Handler
	FavoritesHandler *favorites.Handler
	ReviewsHandler   *reviews.Handler
	LocationHandler  *location.Handler
	MapsHandler      *maps.Handler
	// IdentityMiddleware attaches the optional bearer identity; anonymous
	// requests pass through untouched.
	IdentityMiddleware func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog
		r.Get("/buildings", cfg.CatalogHandler.GetBuildings)
		r.Get("/buildings/{buildingID}", cfg.CatalogHandler.GetBuilding)
		r.Get("/buildings/{buildingID}/spots", cfg.CatalogHandler.GetBuildingSpots)

		// Search and detail
		r.Get("/spots", cfg.SpotsHandler.SearchSpots)
		r.Get("/spots/{spotID}", cfg.SpotsHandler.GetSpot)

		// Reviews
		r.Get("/spots/{spotID}/reviews", cfg.ReviewsHandler.GetSpotReviews)
		r.Get("/spots/{spotID}/rating", cfg.ReviewsHandler.GetSpotRatingSummary)
		r.Group(func(r chi.Router) {
			r.Use(cfg.IdentityMiddleware)
			r.Post("/spots/{spotID}/reviews", cfg.ReviewsHandler.AddSpotReview)
		})

		// Favorites
		r.Get("/favorites", cfg.FavoritesHandler.GetFavorites)
		r.Put("/favorites/{spotID}", cfg.FavoritesHandler.AddFavorite)
		r.Delete("/favorites/{spotID}", cfg.FavoritesHandler.RemoveFavorite)
		r.Post("/favorites/{spotID}/toggle", cfg.FavoritesHandler.ToggleFavorite)

		// Device location
		r.Get("/location", cfg.LocationHandler.GetLocation)
		r.Post("/location", cfg.LocationHandler.UpdateLocation)

		// Map layer
		r.Get("/map/markers", cfg.MapsHandler.GetMarkers)
		r.Get("/map/directions", cfg.MapsHandler.GetDirections)
	})

	return r
}
