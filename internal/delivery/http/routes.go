package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/housestock/backend/config"
	"github.com/housestock/backend/internal/domain"
	"github.com/housestock/backend/internal/metrics"
)

// RouterDeps holds everything the router wires into middleware and routes
type RouterDeps struct {
	Config   *config.Config
	Handler  *Handler
	Limiter  domain.RateLimiter // nil disables rate limiting
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.SugaredLogger
}

// SetupRouter creates and configures the Gin router
func SetupRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config

	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(deps.Logger))
	router.Use(LoggerMiddleware(deps.Logger))
	router.Use(MetricsMiddleware(deps.Metrics))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", deps.Handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	// /api is kept for the SPA, /api/v1 is the versioned path
	for _, prefix := range []string{"/api/v1", "/api"} {
		api := router.Group(prefix)
		if deps.Limiter != nil {
			api.Use(RateLimitMiddleware(deps.Limiter, deps.Metrics, deps.Logger))
		}
		registerAPI(api, deps.Handler)
	}

	if cfg.Server.StaticDir != "" {
		router.NoRoute(spaFallback(cfg.Server.StaticDir))
	}

	return router
}

func registerAPI(api *gin.RouterGroup, h *Handler) {
	wines := api.Group("/wines")
	{
		wines.GET("", h.ListWines)
		wines.POST("", h.CreateWine)
		wines.PUT("/:id", h.UpdateWine)
		wines.DELETE("/:id", h.DeleteWine)
	}

	shopping := api.Group("/shopping")
	{
		shopping.GET("", h.ListShopping)
		shopping.POST("", h.CreateShoppingItem)
		shopping.PUT("/:id", h.ToggleShoppingItem)
		shopping.DELETE("/:id", h.DeleteShoppingItem)
	}

	pantry := api.Group("/pantry")
	{
		pantry.GET("", h.ListPantry)
		pantry.POST("", h.CreatePantryItem)
		pantry.PUT("/:id", h.UpdatePantryItem)
		pantry.DELETE("/:id", h.DeletePantryItem)
	}

	pantryShopping := api.Group("/pantry-shopping")
	{
		pantryShopping.GET("", h.ListPantryShopping)
		pantryShopping.POST("", h.CreatePantryShoppingItem)
		pantryShopping.PUT("/:id", h.TogglePantryShoppingItem)
		pantryShopping.DELETE("/:id", h.DeletePantryShoppingItem)
	}

	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.UpdateSettings)

	api.GET("/stats/cellar", h.CellarStats)
	api.GET("/stats/pantry", h.PantryStats)

	api.POST("/extract", h.ExtractProduct)
}

// spaFallback serves files of the built frontend and index.html for client routes
func spaFallback(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}

		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	}
}
