package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
)

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(payload)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, username string) (token, id string) {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/register", "", map[string]string{
		"name":     "Student " + username,
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

// Full product loop: sign up, chat, follow, and watch XP surface on the
// summary, notification feed, and leaderboard.
func TestCommunityFlow(t *testing.T) {
	r, _ := setupTestApp(t)

	laylaToken, laylaID := registerUser(t, r, "layla_h")
	omarToken, omarID := registerUser(t, r, "omar_dev")

	// Unauthenticated triggers are rejected by the middleware.
	w := doJSON(t, r, "POST", "/api/progress/first-steps", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown profiles surface through the error middleware.
	w = doJSON(t, r, "GET", "/api/users/nobody_here", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Layla opens her dashboard for the first time.
	w = doJSON(t, r, "POST", "/api/progress/first-steps", laylaToken, nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	// Her first community chat message unlocks Ice Breaker.
	w = doJSON(t, r, "POST", "/api/chat/messages", laylaToken, map[string]string{
		"content": "مرحبا! Anyone else doing Unit 2 this term?",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// She follows Omar: Making Friends for her, First Fan for him.
	w = doJSON(t, r, "POST", "/api/users/omar_dev/follow", laylaToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Summary reflects first-steps(10) + ice-breaker(15) + first-follow(15).
	w = doJSON(t, r, "GET", "/api/achievements/summary", laylaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, float64(40), summary["totalXP"])
	assert.Equal(t, float64(1), summary["level"])
	assert.Equal(t, float64(3), summary["unlockedCount"])

	// Omar's side: one follower, First Fan (20 XP), a follow notification and
	// an achievement notification.
	w = doJSON(t, r, "GET", "/api/achievements/summary", omarToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, float64(20), summary["totalXP"])

	w = doJSON(t, r, "GET", "/api/notifications", omarToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notifResp struct {
		Notifications []models.Notification `json:"notifications"`
		UnreadCount   int64                 `json:"unreadCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifResp))
	assert.GreaterOrEqual(t, len(notifResp.Notifications), 2)

	var user models.User
	require.NoError(t, database.DB.First(&user, "id = ?", omarID).Error)
	assert.Equal(t, 1, user.FollowerCount)

	// Wait for the fire-and-forget writer to flush both users' unlocks.
	require.Eventually(t, func() bool {
		var count int64
		database.DB.Model(&models.ProgressRecord{}).
			Where("unlocked = ?", true).
			Where("user_id IN ?", []string{laylaID, omarID}).
			Count(&count)
		return count == 4
	}, 3*time.Second, 20*time.Millisecond)

	// Leaderboard is derived from the flushed unlocked rows.
	w = doJSON(t, r, "GET", "/api/leaderboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var board struct {
		Leaderboard []struct {
			Rank     int    `json:"rank"`
			Username string `json:"username"`
			TotalXP  int    `json:"totalXP"`
			Level    int    `json:"level"`
		} `json:"leaderboard"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board.Leaderboard, 2)
	assert.Equal(t, "layla_h", board.Leaderboard[0].Username)
	assert.Equal(t, 40, board.Leaderboard[0].TotalXP)
	assert.Equal(t, 1, board.Leaderboard[0].Rank)
	assert.Equal(t, "omar_dev", board.Leaderboard[1].Username)
	assert.Equal(t, 20, board.Leaderboard[1].TotalXP)
}

// Login after a restart hydrates from the store without replaying unlock
// toasts or re-granting XP.
func TestRelogin_KeepsXPStable(t *testing.T) {
	r, manager := setupTestApp(t)

	token, userID := registerUser(t, r, "sara_btec")

	w := doJSON(t, r, "POST", "/api/progress/first-steps", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		var rec models.ProgressRecord
		return database.DB.Where("user_id = ? AND unlocked = ?", userID, true).First(&rec).Error == nil
	}, 3*time.Second, 20*time.Millisecond)

	// Achievement notification from the unlock.
	var before int64
	database.DB.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&before)
	require.Equal(t, int64(1), before)

	w = doJSON(t, r, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, active := manager.Session(userID)
	require.False(t, active)

	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    "sara_btec@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Achievements map[string]any `json:"achievements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(10), resp.Achievements["totalXP"])
	assert.Equal(t, float64(1), resp.Achievements["unlockedCount"])

	// Hydration is not an event replay: no second unlock notification.
	var after int64
	database.DB.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&after)
	assert.Equal(t, before, after)

	// The already-unlocked achievement cannot grant XP again.
	w = doJSON(t, r, "POST", "/api/progress/first-steps", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(10), body["totalXP"])
}
