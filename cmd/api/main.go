package main

import (
	"context"
	"log"
	"os"

	"github.com/Matt-OFGC/plato-app-sub003/internal/auth"
	"github.com/Matt-OFGC/plato-app-sub003/internal/db"
	"github.com/Matt-OFGC/plato-app-sub003/internal/ingredient"
	"github.com/Matt-OFGC/plato-app-sub003/internal/mixer"
	"github.com/Matt-OFGC/plato-app-sub003/internal/recipe"
	"github.com/Matt-OFGC/plato-app-sub003/internal/router"
	"github.com/Matt-OFGC/plato-app-sub003/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE (optional) ─────────────────────────
	// Shopping-list export needs a bucket; the rest of the API does not.
	var uploader mixer.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		uploader = r2Client
	} else {
		log.Println("⚠️  R2 not configured, /mixes/export disabled")
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	recipeRepo := recipe.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	ingredientService := ingredient.NewService(ingredientRepo)
	recipeService := recipe.NewService(recipeRepo, ingredientRepo)
	mixerService := mixer.NewService(recipeRepo, ingredientRepo, uploader)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:       auth.NewHandler(authService),
		Ingredient: ingredient.NewHandler(ingredientService),
		Recipe:     recipe.NewHandler(recipeService),
		Mixer:      mixer.NewHandler(mixerService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
