package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"english_coaching/internal/config"
	"english_coaching/internal/handler"
	"english_coaching/internal/middleware"
	"english_coaching/internal/model"
	"english_coaching/internal/repository"
	"english_coaching/internal/service"
	"english_coaching/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogger(cfg)

	// --- Database ---
	ctx := context.Background()
	dbPool, err := config.ConnectDB(ctx, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate database")
	}

	// --- Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecretKey, int64(cfg.JWTExpirationHours))

	// --- Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	noteRepo := repository.NewNoteRepository(dbPool)
	wordRepo := repository.NewWordRepository(dbPool)
	sentenceRepo := repository.NewSentenceRepository(dbPool)
	lessonRepo := repository.NewLessonRepository(dbPool)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtUtil, cfg.InitialAdminEmail)
	noteService := service.NewResourceService[model.Note](noteRepo)
	wordService := service.NewResourceService[model.Word](wordRepo)
	sentenceService := service.NewResourceService[model.Sentence](sentenceRepo)
	lessonService := service.NewResourceService[model.Lesson](lessonRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(authService)

	// --- Router ---
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	jwtAuthMW := middleware.JWTAuthMiddleware(authService)
	adminMW := middleware.AdminMiddleware()

	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)

	protected := apiGroup.Group("", jwtAuthMW)
	handler.RegisterNoteRoutes(protected, noteService)
	handler.RegisterWordRoutes(protected, wordService)
	handler.RegisterSentenceRoutes(protected, sentenceService)
	handler.RegisterLessonRoutes(protected, lessonService)

	adminGroup := apiGroup.Group("", jwtAuthMW, adminMW)
	adminHandler.RegisterAdminRoutes(adminGroup)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
