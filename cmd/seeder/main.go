package main

import (
	"log"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/config"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.User{},
		&models.ProgressRecord{},
		&models.Follow{},
		&models.ChatMessage{},
		&models.UserActivity{},
		&models.Notification{},
	)

	catalog, err := achievements.NewCatalog(achievements.Builtin())
	if err != nil {
		log.Fatalf("❌ Invalid achievement catalog: %v", err)
	}

	if _, err := seeds.GetOrCreateSystemUser(); err != nil {
		log.Fatalf("❌ Failed to create system user: %v", err)
	}

	users := seeds.SeedDemoUsers()
	seeds.SeedProgress(catalog, users)

	log.Println("✅ Database Seeding Complete!")
}
