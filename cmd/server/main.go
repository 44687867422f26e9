package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/config"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/handlers"
	"github.com/FahadTahat/btec-companion-backend/internal/middleware"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/internal/routes"
	"github.com/FahadTahat/btec-companion-backend/internal/services"
	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting BTEC Companion Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Connect Database & Redis
	database.Connect()
	database.InitRedis()

	// 2. Migrations
	logger.Info().Msg("Running database migrations...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.ProgressRecord{},
		&models.Follow{},
		&models.ChatMessage{},
		&models.UserActivity{},
		&models.Notification{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	logger.Info().Msg("Database migrations complete")

	// 3. Build the achievement engine: validated catalog, Postgres-backed
	// store, manager with the product unlock fan-out.
	catalog, err := achievements.NewCatalog(achievements.Builtin())
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid achievement catalog")
	}
	store := achievements.NewGormStore(database.DB)
	manager := achievements.NewManager(catalog, store, services.OnUnlock)
	defer manager.Close()

	logger.Info().Int("achievements", catalog.Len()).Msg("Achievement catalog loaded")

	// 4. Handlers
	authHandler := handlers.NewAuthHandler(manager)
	achievementHandler := handlers.NewAchievementHandler(manager)
	leaderboardHandler := handlers.NewLeaderboardHandler(manager)
	chatHandler := handlers.NewChatHandler(manager)
	socialHandler := handlers.NewSocialHandler(manager)
	userHandler := handlers.NewUserHandler(manager)
	uploadHandler := handlers.NewUploadHandler(manager)

	// 5. Router
	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Exempt /socket.io from the general rate limit
	generalLimit := middleware.GeneralRateLimit()
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/socket.io") {
			c.Next()
			return
		}
		generalLimit(c)
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth, authHandler)

		routes.RegisterAchievementRoutes(api, achievementHandler, leaderboardHandler)
		routes.RegisterChatRoutes(api, chatHandler)
		routes.RegisterSocialRoutes(api, socialHandler)
		routes.RegisterUserRoutes(api, userHandler, uploadHandler)
	}

	// Health check with DB and Redis status
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status": status,
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	// Socket.io relay for chat and notifications
	socketServer := handlers.InitSocketServer()
	defer socketServer.Close()
	r.GET("/socket.io/*any", handlers.SocketHandler(socketServer))
	r.POST("/socket.io/*any", handlers.SocketHandler(socketServer))

	// 6. Start server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
