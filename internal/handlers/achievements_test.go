package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	database.DB = db
	require.NoError(t, database.DB.AutoMigrate(
		&models.User{},
		&models.ProgressRecord{},
		&models.Follow{},
		&models.ChatMessage{},
		&models.UserActivity{},
		&models.Notification{},
	))
}

func testManager(t *testing.T) *achievements.Manager {
	t.Helper()
	catalog, err := achievements.NewCatalog([]achievements.Definition{
		{ID: "quiz-whiz", Category: achievements.CategoryScholar, MaxProgress: 3, XP: 50, TitleEn: "Quiz Whiz", TitleAr: "عبقري الاختبارات"},
		{ID: "first-win", Category: achievements.CategoryExplorer, MaxProgress: 1, XP: 10, TitleEn: "First Win", TitleAr: "أول فوز"},
	})
	require.NoError(t, err)

	m := achievements.NewManager(catalog, achievements.NewGormStore(database.DB), nil)
	t.Cleanup(m.Close)
	return m
}

func progressContext(w *httptest.ResponseRecorder, userID, achievementID string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("POST", "/api/progress/"+achievementID, nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: achievementID}}
	c.Set("userId", userID)
	return c
}

func TestRecordProgress_UnlocksExactlyAtTarget(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	h := NewAchievementHandler(testManager(t))

	var resp map[string]any
	for i := 1; i <= 3; i++ {
		w := httptest.NewRecorder()
		h.RecordProgress(progressContext(w, "user1", "quiz-whiz"))
		assert.Equal(t, http.StatusAccepted, w.Code)

		resp = map[string]any{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "recorded", resp["status"])
		assert.Equal(t, float64(i), resp["progress"])
	}

	assert.Equal(t, true, resp["unlocked"])
	assert.Equal(t, float64(50), resp["totalXP"])
	assert.Equal(t, float64(1), resp["level"])

	// A fourth trigger past the target stays clamped and grants no more XP.
	w := httptest.NewRecorder()
	h.RecordProgress(progressContext(w, "user1", "quiz-whiz"))
	resp = map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(3), resp["progress"])
	assert.Equal(t, float64(50), resp["totalXP"])
}

func TestRecordProgress_UnknownIDIsIgnored(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	h := NewAchievementHandler(testManager(t))

	w := httptest.NewRecorder()
	h.RecordProgress(progressContext(w, "user1", "no-such-achievement"))

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ignored", resp["status"])

	// Nothing is ever written for an unknown id.
	var count int64
	database.DB.Model(&models.ProgressRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRecordProgress_WritesReachTheDatabase(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	h := NewAchievementHandler(testManager(t))

	w := httptest.NewRecorder()
	h.RecordProgress(progressContext(w, "user1", "first-win"))
	assert.Equal(t, http.StatusAccepted, w.Code)

	// The write is fire-and-forget; poll for the flushed row.
	require.Eventually(t, func() bool {
		var rec models.ProgressRecord
		err := database.DB.Where("user_id = ? AND achievement_id = ?", "user1", "first-win").First(&rec).Error
		return err == nil && rec.Unlocked && rec.Progress == 1 && rec.UnlockedAt != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestListAchievements_MergesCatalogAndState(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	m := testManager(t)
	h := NewAchievementHandler(m)

	h.RecordProgress(progressContext(httptest.NewRecorder(), "user1", "first-win"))
	h.RecordProgress(progressContext(httptest.NewRecorder(), "user1", "quiz-whiz"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/achievements", nil)
	c.Set("userId", "user1")
	h.ListAchievements(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Achievements []struct {
			ID         string `json:"id"`
			TitleAr    string `json:"titleAr"`
			Progress   int    `json:"progress"`
			Unlocked   bool   `json:"unlocked"`
			UnlockedAt string `json:"unlockedAt"`
		} `json:"achievements"`
		TotalXP       int `json:"totalXP"`
		Level         int `json:"level"`
		UnlockedCount int `json:"unlockedCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Achievements, 2)
	assert.Equal(t, 10, resp.TotalXP)
	assert.Equal(t, 1, resp.Level)
	assert.Equal(t, 1, resp.UnlockedCount)

	byID := map[string]int{}
	for i, a := range resp.Achievements {
		byID[a.ID] = i
	}
	fw := resp.Achievements[byID["first-win"]]
	assert.True(t, fw.Unlocked)
	assert.Equal(t, 1, fw.Progress)
	assert.NotEmpty(t, fw.UnlockedAt)

	qw := resp.Achievements[byID["quiz-whiz"]]
	assert.False(t, qw.Unlocked)
	assert.Equal(t, 1, qw.Progress)
	assert.Empty(t, qw.UnlockedAt)
	assert.NotEmpty(t, qw.TitleAr)
}

func TestGetSummary(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	h := NewAchievementHandler(testManager(t))

	h.RecordProgress(progressContext(httptest.NewRecorder(), "user1", "first-win"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/achievements/summary", nil)
	c.Set("userId", "user1")
	h.GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(10), resp["totalXP"])
	assert.Equal(t, float64(1), resp["level"])
	assert.Equal(t, float64(1), resp["unlockedCount"])
	assert.Equal(t, float64(2), resp["totalCount"])
}
