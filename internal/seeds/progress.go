package seeds

import (
	"log"
	"time"

	"gorm.io/gorm/clause"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
)

// seedState is an absolute snapshot per achievement: the seeder writes the
// same shape of row the engine's background writer would.
type seedState struct {
	AchievementID string
	Progress      int
	Unlocked      bool
	DaysAgo       int
}

// SeedProgress gives the demo students believable achievement history.
// Unknown ids and over-target values are rejected against the catalog
// rather than written blindly.
func SeedProgress(catalog *achievements.Catalog, users []models.User) {
	log.Println("🏆 Seeding Achievement Progress...")

	// Per-user scripts, keyed by username. Each entry is an absolute state.
	scripts := map[string][]seedState{
		"layla_h": {
			{AchievementID: "first-steps", Progress: 1, Unlocked: true, DaysAgo: 20},
			{AchievementID: "profile-polished", Progress: 1, Unlocked: true, DaysAgo: 20},
			{AchievementID: "ice-breaker", Progress: 1, Unlocked: true, DaysAgo: 19},
			{AchievementID: "conversationalist", Progress: 25, Unlocked: true, DaysAgo: 12},
			{AchievementID: "chatterbox", Progress: 61, Unlocked: false},
			{AchievementID: "first-follow", Progress: 1, Unlocked: true, DaysAgo: 18},
			{AchievementID: "networker", Progress: 10, Unlocked: true, DaysAgo: 9},
			{AchievementID: "searcher", Progress: 1, Unlocked: true, DaysAgo: 17},
		},
		"omar_dev": {
			{AchievementID: "first-steps", Progress: 1, Unlocked: true, DaysAgo: 30},
			{AchievementID: "profile-polished", Progress: 1, Unlocked: true, DaysAgo: 29},
			{AchievementID: "ice-breaker", Progress: 1, Unlocked: true, DaysAgo: 28},
			{AchievementID: "first-follow", Progress: 1, Unlocked: true, DaysAgo: 25},
			{AchievementID: "first-fan", Progress: 1, Unlocked: true, DaysAgo: 24},
			{AchievementID: "search-hound", Progress: 14, Unlocked: false},
		},
		"sara_btec": {
			{AchievementID: "first-steps", Progress: 1, Unlocked: true, DaysAgo: 8},
			{AchievementID: "ice-breaker", Progress: 1, Unlocked: true, DaysAgo: 7},
			{AchievementID: "conversationalist", Progress: 11, Unlocked: false},
		},
		"yusuf_k": {
			{AchievementID: "first-steps", Progress: 1, Unlocked: true, DaysAgo: 2},
		},
	}

	byUsername := make(map[string]models.User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}

	rows := 0
	for username, states := range scripts {
		user, ok := byUsername[username]
		if !ok {
			continue
		}
		for _, s := range states {
			def, ok := catalog.Lookup(s.AchievementID)
			if !ok {
				log.Printf("   ⚠️ Skipping unknown achievement %q", s.AchievementID)
				continue
			}
			progress := s.Progress
			if progress > def.MaxProgress {
				progress = def.MaxProgress
			}

			rec := models.ProgressRecord{
				UserID:        user.ID,
				AchievementID: s.AchievementID,
				Progress:      progress,
				Unlocked:      s.Unlocked,
				UpdatedAt:     time.Now(),
			}
			if s.Unlocked {
				at := time.Now().AddDate(0, 0, -s.DaysAgo)
				rec.UnlockedAt = &at
			}

			err := database.DB.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"progress", "unlocked", "unlocked_at", "updated_at"}),
			}).Create(&rec).Error
			if err != nil {
				log.Printf("   ⚠️ Failed to seed %s/%s: %v", username, s.AchievementID, err)
				continue
			}
			rows++
		}
	}

	log.Printf("   ✅ %d progress rows written", rows)
}
