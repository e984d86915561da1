package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vistatrip/listings-backend-go/internal/config"
	"github.com/vistatrip/listings-backend-go/internal/database"
	"github.com/vistatrip/listings-backend-go/internal/handler"
	"github.com/vistatrip/listings-backend-go/internal/middleware"
	"github.com/vistatrip/listings-backend-go/internal/repository"
	"github.com/vistatrip/listings-backend-go/internal/service"
)

// SetupRouter wires the catalog routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Listings Catalog API is running",
		})
	})

	repo := repository.NewListingRepository(database.GetDB())
	catalog := handler.NewCatalogHandler(service.NewCatalogService(repo))
	auth := handler.NewAuthHandler(cfg)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", auth.IssueToken)

		listings := api.Group("/listings")
		{
			listings.GET("/:kind", catalog.SearchListings)
			listings.GET("/:kind/facets", catalog.GetFacets)
			listings.POST("/:kind", middleware.PartnerAuth(cfg.JWTSecret), catalog.CreateListing)
		}

		api.GET("/listing/:id", catalog.GetListingByID)
	}

	return r
}
