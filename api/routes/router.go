package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jchairstudios/catalog-backend/api/controllers"
	"github.com/jchairstudios/catalog-backend/api/middleware"
	"github.com/jchairstudios/catalog-backend/internal/catalog"
	"github.com/jchairstudios/catalog-backend/internal/wishlist"
	"github.com/jchairstudios/catalog-backend/pkg/config"
	"github.com/jchairstudios/catalog-backend/pkg/db"
	"github.com/jchairstudios/catalog-backend/pkg/logger"
	"github.com/jchairstudios/catalog-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	catalogService catalog.Service,
	wishlistService wishlist.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	browsePolicy := middleware.NewRateLimitPolicy("catalog", cfg.RateLimit.Window, cfg.RateLimit.Limit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	catalogSettings := controllers.CatalogSettings{
		DefaultLimit: cfg.Catalog.DefaultLimit,
		MaxLimit:     cfg.Catalog.MaxLimit,
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(browsePolicy, redisClient, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogListProducts(catalogService, catalogSettings, logg))
			r.Get("/products/{productId}", controllers.CatalogGetProduct(catalogService, logg))
			r.Get("/filters/{category}", controllers.CatalogFilterOptions(catalogService, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(middleware.Session(logg))
			r.Get("/", controllers.WishlistGet(wishlistService, logg))
			r.Post("/items", controllers.WishlistAddItem(wishlistService, logg))
			r.Delete("/items/{productId}", controllers.WishlistRemoveItem(wishlistService, logg))
		})
	})

	return r
}
