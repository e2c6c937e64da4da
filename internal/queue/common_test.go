package queue_test

import (
	"log"
	"os"
	"testing"

	"fest-proposal-service/config"
	"fest-proposal-service/internal/database"

	"github.com/redis/go-redis/v9"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize test redis: %v", err)
	}
	testRdb = rdb

	code := m.Run()
	rdb.Close()
	os.Exit(code)
}
