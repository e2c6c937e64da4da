package repository_test

import (
	"context"
	"log"
	"os"
	"testing"

	"fest-proposal-service/config"
	"fest-proposal-service/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testDB, err = database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize test database: %v", err)
	}

	log.Println("Test database connected successfully")

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

// truncateTables clears test data while keeping the schema.
func truncateTables(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(context.Background(),
		"TRUNCATE registrations, proposal_decisions, change_proposals, events, clubs CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}
