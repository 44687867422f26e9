package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
)

func GetOrCreateSystemUser() (models.User, error) {
	log.Println("👤 Checking System User...")

	username := "btec-companion"
	email := "official@btec-companion.app"

	var user models.User
	err := database.DB.Where("username = ?", username).First(&user).Error

	if err == nil {
		log.Printf("   ✅ System User found: %s", user.Username)
		return user, nil
	}

	// Create if not exists
	hash, _ := bcrypt.GenerateFromPassword([]byte("BtecCompanionOfficial2026!"), bcrypt.DefaultCost)

	user = models.User{
		ID:                  uuid.New().String(),
		Username:            username,
		Email:               email,
		Password:            string(hash),
		Role:                models.RoleAdmin,
		Name:                "BTEC Companion Team",
		Bio:                 "Official BTEC Companion account. Announcements, study tips, and community events.",
		Avatar:              "https://api.dicebear.com/7.x/identicon/svg?seed=btec-companion",
		OnboardingCompleted: true,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	log.Printf("   ✅ System User Created: %s", user.Username)
	return user, nil
}

// SeedDemoUsers creates a handful of students with varied achievement
// progress so the leaderboard and activity feed have something to show.
func SeedDemoUsers() []models.User {
	log.Println("🎓 Seeding Demo Students...")

	demo := []struct {
		Username string
		Name     string
		Bio      string
		Units    []string
	}{
		{"layla_h", "Layla Haddad", "Year 1 Business student. Coffee first, coursework second.", []string{"Unit 1: Exploring Business", "Unit 2: Marketing Campaign"}},
		{"omar_dev", "Omar Khalil", "IT student, building things on weekends.", []string{"Unit 1: Information Technology Systems", "Unit 6: Website Development"}},
		{"sara_btec", "Sara Mansour", "Health and Social Care. Ask me about placements.", []string{"Unit 1: Human Lifespan Development"}},
		{"yusuf_k", "Yusuf Karim", "Engineering pathways. Mostly here for the community.", []string{"Unit 1: Engineering Principles"}},
	}

	users := make([]models.User, 0, len(demo))
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	for _, d := range demo {
		var existing models.User
		if err := database.DB.Where("username = ?", d.Username).First(&existing).Error; err == nil {
			users = append(users, existing)
			continue
		}

		u := models.User{
			ID:                  uuid.New().String(),
			Username:            d.Username,
			Email:               d.Username + "@example.com",
			Password:            string(hash),
			Role:                models.RoleStudent,
			Name:                d.Name,
			Bio:                 d.Bio,
			Avatar:              "https://api.dicebear.com/7.x/avataaars/svg?seed=" + d.Username,
			Units:               pq.StringArray(d.Units),
			OnboardingCompleted: true,
		}
		if err := database.DB.Create(&u).Error; err != nil {
			log.Printf("   ⚠️ Failed to create %s: %v", d.Username, err)
			continue
		}
		users = append(users, u)
	}

	log.Printf("   ✅ %d demo students ready", len(users))
	return users
}
