package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
)

type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar"`
	TotalXP       int       `json:"totalXP"`
	Level         int       `json:"level"`
	UnlockedCount int       `json:"unlockedCount"`
	LastUnlockAt  time.Time `json:"lastUnlockAt"` // For tie-breaking
}

// In-memory cache, refreshed at most every lbTTL. Redis fronts it so multiple
// instances share one computation.
type cachedLeaderboard struct {
	Entries   []LeaderboardEntry
	ExpiresAt time.Time
}

var (
	lbCache    *cachedLeaderboard
	lbMutex    sync.RWMutex
	lbTTL      = 30 * time.Second
	lbRedisKey = "leaderboard:xp"
)

// InvalidateLeaderboardCache clears the cached board so the next read
// recomputes. Called on unlocks; ordinary churn is covered by the TTL.
func InvalidateLeaderboardCache() {
	lbMutex.Lock()
	lbCache = nil
	lbMutex.Unlock()

	if database.Redis != nil {
		if err := database.CacheInvalidate(lbRedisKey); err != nil {
			logger.Warn().Err(err).Msg("Failed to invalidate leaderboard cache")
		}
	}
}

// GetLeaderboard ranks users by total XP derived from their unlocked
// achievements. XP is never read from a stored counter: the unlocked set and
// the catalog are the only inputs, so the board cannot drift from the engine.
func GetLeaderboard(catalog *achievements.Catalog, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	// 1. Local cache
	lbMutex.RLock()
	if lbCache != nil && time.Now().Before(lbCache.ExpiresAt) {
		entries := lbCache.Entries
		lbMutex.RUnlock()
		return truncate(entries, limit), nil
	}
	lbMutex.RUnlock()

	// 2. Redis cache
	if database.Redis != nil {
		var cached []LeaderboardEntry
		if err := database.CacheGet(lbRedisKey, &cached); err == nil && len(cached) > 0 {
			storeLocal(cached)
			return truncate(cached, limit), nil
		}
	}

	// 3. Recompute from the unlocked sets
	var rows []models.ProgressRecord
	if err := database.DB.
		Preload("User").
		Where("unlocked = ?", true).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load unlocked records: %w", err)
	}

	userMap := make(map[string]*LeaderboardEntry)
	for _, row := range rows {
		def, ok := catalog.Lookup(row.AchievementID)
		if !ok {
			continue // retired achievement, ignore
		}

		entry := userMap[row.UserID]
		if entry == nil {
			entry = &LeaderboardEntry{
				UserID:   row.UserID,
				Username: row.User.Username,
				Name:     row.User.Name,
				Avatar:   row.User.Avatar,
			}
			userMap[row.UserID] = entry
		}

		entry.TotalXP += def.XP
		entry.UnlockedCount++
		if row.UnlockedAt != nil && row.UnlockedAt.After(entry.LastUnlockAt) {
			entry.LastUnlockAt = *row.UnlockedAt
		}
	}

	leaderboard := make([]LeaderboardEntry, 0, len(userMap))
	for _, entry := range userMap {
		entry.Level = achievements.Level(entry.TotalXP)
		leaderboard = append(leaderboard, *entry)
	}

	sort.Slice(leaderboard, func(i, j int) bool {
		// 1. Total XP DESC
		if leaderboard[i].TotalXP != leaderboard[j].TotalXP {
			return leaderboard[i].TotalXP > leaderboard[j].TotalXP
		}
		// 2. Unlocked Count DESC
		if leaderboard[i].UnlockedCount != leaderboard[j].UnlockedCount {
			return leaderboard[i].UnlockedCount > leaderboard[j].UnlockedCount
		}
		// 3. Earliest last unlock wins the tie
		return leaderboard[i].LastUnlockAt.Before(leaderboard[j].LastUnlockAt)
	})

	for i := range leaderboard {
		leaderboard[i].Rank = i + 1
	}

	storeLocal(leaderboard)
	if database.Redis != nil {
		if err := database.CacheSet(lbRedisKey, leaderboard, lbTTL); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache leaderboard in Redis")
		}
	}

	return truncate(leaderboard, limit), nil
}

func storeLocal(entries []LeaderboardEntry) {
	lbMutex.Lock()
	lbCache = &cachedLeaderboard{Entries: entries, ExpiresAt: time.Now().Add(lbTTL)}
	lbMutex.Unlock()
}

func truncate(entries []LeaderboardEntry, limit int) []LeaderboardEntry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
