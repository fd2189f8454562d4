package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Matt-OFGC/plato-app-sub003/internal/auth"
	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
	"github.com/Matt-OFGC/plato-app-sub003/internal/middleware"
	"github.com/Matt-OFGC/plato-app-sub003/internal/mixer"
	"github.com/Matt-OFGC/plato-app-sub003/internal/recipe"
	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

// Handlers carries every feature handler the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	Ingredient *ingredient.Handler
	Recipe     *recipe.Handler
	Mixer      *mixer.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Valid unit tokens, for form dropdowns
	r.GET("/units", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"units": units.All()})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── INGREDIENTS ─────────────────────────
	ingredients := r.Group("/ingredients")
	ingredients.Use(middleware.AuthMiddleware())
	{
		ingredients.POST("", h.Ingredient.Create)
		ingredients.GET("", h.Ingredient.List)
		ingredients.GET("/:id", h.Ingredient.Get)
		ingredients.GET("/:id/unit-cost", h.Ingredient.UnitCost)
		ingredients.PUT("/:id", h.Ingredient.Update)
		ingredients.DELETE("/:id", h.Ingredient.Delete)
	}

	// ───────────────────────── RECIPES ─────────────────────────
	recipes := r.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware())
	{
		recipes.POST("", h.Recipe.Create)
		recipes.GET("", h.Recipe.List)
		recipes.GET("/:id", h.Recipe.Get)
		recipes.GET("/:id/cost", h.Recipe.Cost)
		recipes.PUT("/:id", h.Recipe.Update)
		recipes.DELETE("/:id", h.Recipe.Delete)
	}

	// ───────────────────────── MIXES ─────────────────────────
	mixes := r.Group("/mixes")
	mixes.Use(middleware.AuthMiddleware())
	{
		mixes.POST("/combine", h.Mixer.Combine)
		mixes.POST("/export", h.Mixer.Export)
	}

	return r
}
