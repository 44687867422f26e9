package integration

import (
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/config"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/handlers"
	"github.com/FahadTahat/btec-companion-backend/internal/middleware"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/internal/routes"
	"github.com/FahadTahat/btec-companion-backend/internal/services"
)

// setupTestApp wires the full API surface against an in-memory SQLite DB:
// real router, real auth middleware, real achievement engine with the
// compiled-in catalog.
func setupTestApp(t *testing.T) (*gin.Engine, *achievements.Manager) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTSecret: "test_secret_key_12345",
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	database.DB = db

	err = database.DB.AutoMigrate(
		&models.User{},
		&models.ProgressRecord{},
		&models.Follow{},
		&models.ChatMessage{},
		&models.UserActivity{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	catalog, err := achievements.NewCatalog(achievements.Builtin())
	if err != nil {
		t.Fatalf("Invalid catalog: %v", err)
	}
	manager := achievements.NewManager(catalog, achievements.NewGormStore(database.DB), services.OnUnlock)
	t.Cleanup(manager.Close)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())

	api := r.Group("/api")
	{
		routes.RegisterAuthRoutes(api.Group("/auth"), handlers.NewAuthHandler(manager))
		routes.RegisterAchievementRoutes(api, handlers.NewAchievementHandler(manager), handlers.NewLeaderboardHandler(manager))
		routes.RegisterChatRoutes(api, handlers.NewChatHandler(manager))
		routes.RegisterSocialRoutes(api, handlers.NewSocialHandler(manager))
		routes.RegisterUserRoutes(api, handlers.NewUserHandler(manager), handlers.NewUploadHandler(manager))
	}

	return r, manager
}
