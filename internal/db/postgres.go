package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'MAKER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// INGREDIENTS
	// -------------------------------
	// Pack and price columns are NUMERIC; the repositories read them back
	// as text and parse into decimals.
	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			pack_quantity NUMERIC(14,4) NOT NULL,
			pack_unit VARCHAR(20) NOT NULL,
			pack_price NUMERIC(14,4) NOT NULL,
			currency VARCHAR(10) NOT NULL DEFAULT 'GBP',
			density NUMERIC(10,5) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPES
	// -------------------------------
	recipesSQL := `
		CREATE TABLE IF NOT EXISTS recipes (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			yield_quantity NUMERIC(14,4) NOT NULL,
			yield_unit VARCHAR(20) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, recipesSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPE SECTIONS
	// -------------------------------
	sectionsSQL := `
		CREATE TABLE IF NOT EXISTS recipe_sections (
			id BIGSERIAL PRIMARY KEY,
			recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL DEFAULT '',
			position INT NOT NULL,
			bake_temp VARCHAR(50) NOT NULL DEFAULT '',
			bake_time VARCHAR(50) NOT NULL DEFAULT '',
			method TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, sectionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPE ITEMS
	// -------------------------------
	itemsSQL := `
		CREATE TABLE IF NOT EXISTS recipe_items (
			id BIGSERIAL PRIMARY KEY,
			recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			section_id BIGINT NULL REFERENCES recipe_sections(id) ON DELETE CASCADE,
			position INT NOT NULL,
			ingredient_id UUID NOT NULL,
			quantity NUMERIC(14,4) NOT NULL,
			unit VARCHAR(20) NOT NULL,
			note TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, itemsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
