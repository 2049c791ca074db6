package main

import (
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/hypermodeinc/ship-hypercategories/internal/cache"
	"github.com/hypermodeinc/ship-hypercategories/internal/config"
	"github.com/hypermodeinc/ship-hypercategories/internal/database"
	"github.com/hypermodeinc/ship-hypercategories/internal/dictionary"
	"github.com/hypermodeinc/ship-hypercategories/internal/handlers"
	"github.com/hypermodeinc/ship-hypercategories/internal/inference"
	"github.com/hypermodeinc/ship-hypercategories/internal/repository"
	"github.com/hypermodeinc/ship-hypercategories/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title           Categories Game API
// @version         1.0
// @description     Scattergories-style word game: letter/dictionary validation, category entailment, duplicate detection and a ranked leaderboard
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	var redisCache *cache.Client
	if cfg.RedisAddr != "" {
		var err error
		redisCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
	} else {
		log.Println("REDIS_ADDR not set, dictionary cache disabled")
	}

	cacheTTLSec, _ := strconv.Atoi(cfg.DictionaryCacheTTL)
	if cacheTTLSec <= 0 {
		cacheTTLSec = 86400
	}
	dictClient := dictionary.NewClient(cfg.DictionaryURL, redisCache, time.Duration(cacheTTLSec)*time.Second)

	inferenceClient := inference.NewClient(cfg.InferenceURL, cfg.InferenceAPIKey)
	classifier := inference.NewClassifier(inferenceClient, cfg.EntailmentModel)
	embedder := inference.NewEmbedder(inferenceClient, cfg.EmbeddingModel)
	chatClient := inference.NewChatClient(cfg.ChatAPIKey, cfg.ChatAPIURL, cfg.ChatModel)
	if !chatClient.IsAvailable() {
		log.Println("CHAT_API_KEY not set, AI opponent disabled")
	}

	repo := repository.NewGameRepository(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	evaluationService := services.NewEvaluationService(dictClient, classifier)
	similarityService := services.NewSimilarityService(embedder)
	scoringService := services.NewScoringService()
	leaderboardService := services.NewLeaderboardService(repo, similarityService, scoringService)
	gameService := services.NewGameService(repo, evaluationService, chatClient, rng)

	gameHandler := handlers.NewGameHandler(gameService, leaderboardService)
	submissionHandler := handlers.NewSubmissionHandler(gameService)
	dictionaryHandler := handlers.NewDictionaryHandler(dictClient)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api/v1")
	{
		games := api.Group("/games")
		{
			games.POST("", gameHandler.CreateGame)
			games.GET("/:id", gameHandler.GetGame)
			games.GET("/:id/leaderboard", gameHandler.GetLeaderboard)
			games.POST("/:id/submissions", submissionHandler.Submit)
			games.POST("/:id/simulate", submissionHandler.Simulate)
		}

		api.GET("/dictionary/:word", dictionaryHandler.CheckWord)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
