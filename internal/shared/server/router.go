package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sentinel-backend/docs"
	"sentinel-backend/internal/analyses"
	"sentinel-backend/internal/incidents"
	"sentinel-backend/internal/settings"
	"sentinel-backend/internal/shared/config"
	"sentinel-backend/internal/shared/metrics"
	"sentinel-backend/internal/shared/server/middleware"
	"sentinel-backend/internal/shared/server/respond"
)

const (
	serviceName    = "Sensitive Information Detection API"
	serviceVersion = "1.0.0"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	IncidentHandler *incidents.Handler
	SettingsHandler *settings.Handler
	SettingsService *settings.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"status":  "online",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
	r.GET("/metrics", metrics.Handler())

	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	api := r.Group("/api")
	api.GET("/health", healthHandler(deps.SettingsService))

	// Analyze routes carry the rate limit; everything else is cheap reads.
	analyze := api.Group("")
	analyze.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: 0.5, Burst: 5},
		},
		DefaultGroup: "ANALYZE",
	}))
	deps.AnalysisHandler.RegisterRoutes(analyze)

	deps.IncidentHandler.RegisterRoutes(api)
	deps.SettingsHandler.RegisterRoutes(api)

	return r
}

func healthHandler(svc *settings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := svc.Get(c.Request.Context())
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to load settings", nil)
			return
		}
		respond.OK(c, gin.H{
			"status":         "healthy",
			"api_configured": current.APIKey != "",
			"model":          current.Model,
		})
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
