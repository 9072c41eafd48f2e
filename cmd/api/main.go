// @title Padhobadho API
// @version 1.0
// @description Exam practice and mock test API.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "padhobadho/cmd/api/docs"
	"padhobadho/internal/adapter"
	"padhobadho/internal/cache"
	"padhobadho/internal/config"
	"padhobadho/internal/database"
	"padhobadho/internal/domain"
	"padhobadho/internal/event"
	"padhobadho/internal/handler"
	"padhobadho/internal/logger"
	"padhobadho/internal/middleware"
	"padhobadho/internal/repository"
	"padhobadho/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional. Without it questions are read straight from the
	// database and achievements are evaluated inline.
	var (
		redisClient  *redis.Client
		cacheAdapter domain.Cache
	)
	if cfg.Redis.Address != "" {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
			redisClient = nil
		} else {
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis")
		}
	}

	// Repositories
	txManager := repository.NewTransactionManagerAdapter(db)
	var questionRepo domain.QuestionRepository = repository.NewQuestionDatabaseAdapter(db)
	if cacheAdapter != nil {
		questionRepo = adapter.NewCachedQuestionRepository(
			questionRepo,
			cacheAdapter,
			cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Question, time.Hour),
		)
	}
	subjectRepo := repository.NewSubjectDatabaseAdapter(db)
	sessionRepo := repository.NewSessionDatabaseAdapter(db)
	attemptRepo := repository.NewAttemptDatabaseAdapter(db)
	historyRepo := repository.NewHistoryDatabaseAdapter(db)
	summaryRepo := repository.NewSummaryDatabaseAdapter(db)
	userRepo := repository.NewUserDatabaseAdapter(db)
	achievementRepo := repository.NewAchievementDatabaseAdapter(db)

	// Achievements
	achievementService := service.NewAchievementService(userRepo, attemptRepo, sessionRepo, summaryRepo, achievementRepo, appLogger)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	var (
		notifier      domain.AchievementNotifier
		drainNotifier func()
	)
	if redisClient != nil {
		queue := event.NewRedisAchievementQueue(redisClient)
		notifier = queue
		worker := event.NewAchievementWorker(queue, achievementService, appLogger)
		workerDone := make(chan struct{})
		go func() {
			defer close(workerDone)
			worker.Run(workerCtx)
		}()
		drainNotifier = func() {
			stopWorker()
			<-workerDone
		}
		appLogger.Info("Achievement worker started")
	} else {
		inline := event.NewInlineNotifier(achievementService, appLogger)
		notifier = inline
		drainNotifier = inline.Wait
	}

	// Services
	tokenService, err := service.NewTokenService(cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create TokenService", zap.Error(err))
	}
	practiceService := service.NewPracticeService(questionRepo, subjectRepo, sessionRepo, userRepo, cfg.Practice)
	progressService := service.NewProgressService(txManager, service.ProgressRepositories{
		Questions:    questionRepo,
		Sessions:     sessionRepo,
		Attempts:     attemptRepo,
		History:      historyRepo,
		Summaries:    summaryRepo,
		Users:        userRepo,
		Achievements: achievementRepo,
	}, notifier, cfg.Location(), appLogger)
	mockTestService := service.NewMockTestService(questionRepo, subjectRepo, cfg.MockTest.QuestionCount)
	scoringService := service.NewScoringService(txManager, userRepo, subjectRepo, sessionRepo, questionRepo, summaryRepo, notifier, appLogger)
	questionAdminService := service.NewQuestionAdminService(txManager, questionRepo, cacheAdapter)

	// Handlers
	practiceHandler := handler.NewPracticeHandler(practiceService, progressService)
	mockTestHandler := handler.NewMockTestHandler(mockTestService, scoringService)
	progressHandler := handler.NewProgressHandler(progressService)
	adminHandler := handler.NewAdminHandler(questionAdminService)
	checks := map[string]handler.Pinger{"database": db}
	if cacheAdapter != nil {
		checks["redis"] = handler.PingFunc(cacheAdapter.Ping)
	}
	healthHandler := handler.NewHealthHandler(checks)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler.Health)

	auth := middleware.Protected(tokenService)
	api := app.Group("/api", auth)

	practice := api.Group("/practice")
	practice.Post("/sessions", practiceHandler.StartPractice)
	practice.Post("/answers", practiceHandler.SubmitAnswer)

	mockTests := api.Group("/mock-tests")
	mockTests.Post("/", mockTestHandler.StartMockTest)
	mockTests.Post("/submit", mockTestHandler.SubmitMockTest)

	api.Get("/users/me/progress", progressHandler.GetMyProgress)

	validator := middleware.NewValidationMiddleware()
	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.Delete("/questions/:id", validator.ValidateIDParam("id"), adminHandler.DeleteQuestion)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		drainNotifier()
	}()
	select {
	case <-drained:
	case <-ctx.Done():
		appLogger.Warn("Pending achievement evaluations did not finish in time")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	appLogger.Info("Server exited gracefully")
}
