package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"GasMileageTracker/internal/config"
	"GasMileageTracker/internal/middleware"
)

// NewRouter registers the HTML form, the JSON API and the Swagger UI.
func NewRouter(cfg *config.Config, h *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())

	// engine level so preflight requests, which match no route, still get answered
	corsConfig := cors.DefaultConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.AccessCodeHeader)
	router.Use(cors.New(corsConfig))
	router.SetHTMLTemplate(Templates())

	limiter := middleware.RateLimitMiddleware(cfg.Security.RateLimitRPS, cfg.Security.RateLimitBurst)

	router.GET("/", h.Index)
	router.POST("/", limiter, middleware.AccessCodeMiddleware(cfg.Security.AccessCodeHash, h.AccessDenied), h.Submit)
	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.GET("/records", h.ListRecords)
		api.GET("/records/recent", h.RecentRecords)
		api.GET("/chart", h.Chart)
		api.POST("/records", limiter, middleware.AccessCodeMiddleware(cfg.Security.AccessCodeHash, nil), h.CreateRecord)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
