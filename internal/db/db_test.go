package db

import (
	"context"
	"os"
	"testing"
)

// TestConnectPostgres exercises the real pool against a live database.
// It is skipped unless DATABASE_URL points at one.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	// Schema init runs inside ConnectPostgres; the costing tables must exist.
	for _, table := range []string{"users", "ingredients", "recipes", "recipe_sections", "recipe_items"} {
		var one int
		err := pool.QueryRow(context.Background(),
			"SELECT 1 FROM information_schema.tables WHERE table_name = $1", table).Scan(&one)
		if err != nil {
			t.Errorf("expected table %s to exist: %v", table, err)
		}
	}
}
