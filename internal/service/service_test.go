package service

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/nestegghq/nestegg/internal/db"
)

// newTestDB opens an in-memory SQLite database with all migrations applied.
// MaxOpenConns is pinned to 1 so every query sees the same in-memory database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}
