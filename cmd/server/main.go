package main

import (
	"context"
	"log"

	"fest-proposal-service/config"
	"fest-proposal-service/internal/cache"
	"fest-proposal-service/internal/database"
	"fest-proposal-service/internal/handler"
	"fest-proposal-service/internal/queue"
	"fest-proposal-service/internal/repository"
	"fest-proposal-service/internal/service"
	"fest-proposal-service/internal/storage"
	"fest-proposal-service/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	posterStorage, err := storage.NewLocalPosterStorage(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize poster storage: %v", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	proposalRepo := repository.NewProposalRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	clubRepo := repository.NewClubRepository(pool)
	decisionRepo := repository.NewDecisionRepository(pool)

	eventCache := cache.NewRedisEventCacheManager(rdb)

	decisionQueue, err := queue.NewRedisStreamDecisionQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize decision queue: %v", err)
	}

	eventService := service.NewEventService(eventRepo, eventCache)
	proposalService := service.NewProposalService(proposalRepo, eventRepo, eventCache, decisionQueue)
	registrationService := service.NewRegistrationService(registrationRepo, eventService)
	clubService := service.NewClubService(clubRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	auditWorker := worker.NewAuditWorker(decisionRepo, decisionQueue)
	if err := auditWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start audit worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.Static("/posters", cfg.Storage.Dir)

	handler.NewClubHandler(clubService).RegisterRoutes(router)
	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewProposalHandler(proposalService).RegisterRoutes(router)
	handler.NewRegistrationHandler(registrationService, eventService).RegisterRoutes(router)
	handler.NewPosterHandler(posterStorage).RegisterRoutes(router)

	router.Run() // listens on 0.0.0.0:8080 by default
}
