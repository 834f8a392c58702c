package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmacademy/internal/cache"
	"pharmacademy/internal/config"
	"pharmacademy/internal/document"
	"pharmacademy/internal/llm"
	"pharmacademy/internal/questionbank"
	"pharmacademy/internal/repository"
	"pharmacademy/internal/service"
	"pharmacademy/internal/storage"
	"pharmacademy/internal/transport/rest"
	"pharmacademy/internal/transport/ws"
)

// @title PharmAcademy API
// @version 1.0
// @description Pharmacy education API: quizzes, drug interactions, paper summaries and an assistant chat
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel, cfg.IsProduction())
	log := config.Log
	ctx := context.Background()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.WithFields(logrus.Fields{
		"provider":    aiConfig.Provider,
		"quiz":        aiConfig.Models.Quiz,
		"interaction": aiConfig.Models.Interaction,
		"summary":     aiConfig.Models.Summary,
		"chat":        aiConfig.Models.Chat,
		"enabled":     aiConfig.IsEnabled(),
	}).Info("AI config")
	if !aiConfig.IsEnabled() {
		log.Warn("no AI API key set; quizzes use the bank and fallback table, other AI features return errors")
	}

	completer, err := llm.New(ctx, aiConfig)
	if err != nil {
		log.WithError(err).Fatal("failed to create LLM client")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(context.Background())

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.WithError(err).Fatal("failed to ping MongoDB")
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)
	repository.EnsureIndexes(ctx, db)

	// Redis is optional; caches are skipped without it
	var (
		quizCache cache.QuizCache
		lbCache   cache.LeaderboardCache
		drugCache cache.DrugInfoCache
	)
	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		log.WithError(err).Fatal("invalid REDIS_URI")
	}
	if redisOpts != nil {
		rdb := redis.NewClient(redisOpts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, running without caches")
		} else {
			log.Info("connected to Redis")
			quizCache = cache.NewQuizCache(rdb)
			lbCache = cache.NewLeaderboardCache(rdb)
			drugCache = cache.NewDrugInfoCache(rdb)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	quizRepo := repository.NewQuizRepo(db)
	resultRepo := repository.NewResultRepo(db)
	paperRepo := repository.NewPaperRepo(db)
	chatRepo := repository.NewChatRepo(db)
	bankRepo := repository.NewBankRepo(db)

	bank, err := loadBank(ctx, cfg.QuestionBankPath, bankRepo)
	if err != nil {
		log.WithError(err).Fatal("failed to load question bank")
	}
	log.WithField("questions", bank.Size()).Info("question bank loaded")

	store, uploadsDir, err := openStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to set up file storage")
	}

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	defer wsHub.Close()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	leaderboardSvc := service.NewLeaderboardService(userRepo, lbCache)
	leaderboardSvc.SetBroadcaster(wsHub)
	quizSvc := service.NewQuizService(bank, completer, aiConfig.Models.Quiz, quizRepo, resultRepo, userRepo, quizCache, leaderboardSvc)
	interactionSvc := service.NewInteractionService(completer, aiConfig.Models.Interaction, drugCache)
	summarizerSvc := service.NewSummarizerService(completer, aiConfig.Models.Summary, store, document.PDFExtractor{}, paperRepo, userRepo, os.TempDir())
	chatSvc := service.NewChatService(completer, aiConfig.Models.Chat, chatRepo)
	userSvc := service.NewUserService(userRepo, resultRepo, store)

	router := rest.NewRouter(&rest.Container{
		Auth:           authSvc,
		Quiz:           quizSvc,
		Leaderboard:    leaderboardSvc,
		Interactions:   interactionSvc,
		Summarizer:     summarizerSvc,
		Chat:           chatSvc,
		Users:          userSvc,
		WSHub:          wsHub,
		AllowedOrigin:  cfg.FrontendURL,
		MaxUploadBytes: cfg.MaxUploadBytes,
		UploadsDir:     uploadsDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("server exited")
}

// loadBank reads the fixture file when configured, otherwise the stored bank.
// An empty result is allowed; quizzes then come from the model or the fallback table.
func loadBank(ctx context.Context, path string, repo repository.BankRepo) (*questionbank.Bank, error) {
	if path != "" {
		return questionbank.LoadFile(path)
	}
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	data, err := repo.LoadAll(loadCtx)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return questionbank.Empty(), nil
	}
	return questionbank.New(data)
}

// openStore uses Cloudinary when configured and the local upload dir otherwise.
// The returned dir is non-empty only for local storage.
func openStore(cfg *config.Config) (storage.BlobStore, string, error) {
	if cfg.CloudinaryURL != "" {
		store, err := storage.NewCloudinaryStore(cfg.CloudinaryURL)
		return store, "", err
	}
	config.Log.WithField("dir", cfg.UploadDir).Warn("CLOUDINARY_URL not set, storing uploads locally")
	store, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		return nil, "", err
	}
	return store, cfg.UploadDir, nil
}
