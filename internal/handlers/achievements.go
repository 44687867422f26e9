package handlers

import (
	"net/http"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/gin-gonic/gin"
)

// AchievementHandler exposes the progress engine over HTTP. It holds the
// manager by injection; nothing in this package owns engine state.
type AchievementHandler struct {
	manager *achievements.Manager
}

func NewAchievementHandler(m *achievements.Manager) *AchievementHandler {
	return &AchievementHandler{manager: m}
}

type achievementView struct {
	achievements.Definition
	Progress   int    `json:"progress"`
	Unlocked   bool   `json:"unlocked"`
	UnlockedAt string `json:"unlockedAt,omitempty"`
}

// ListAchievements handles GET /achievements: the full catalog merged with
// the caller's session state.
func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	userID := c.GetString("userId")

	// BeginSession is idempotent; this also covers tokens that outlive a
	// server restart.
	session := h.manager.BeginSession(c.Request.Context(), userID)
	state := session.Snapshot()

	views := make([]achievementView, 0, h.manager.Catalog().Len())
	for _, def := range h.manager.Catalog().All() {
		v := achievementView{
			Definition: def,
			Progress:   state.Progress[def.ID],
			Unlocked:   state.Unlocked[def.ID],
		}
		if at, ok := state.UnlockedAt[def.ID]; ok {
			v.UnlockedAt = at.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
		views = append(views, v)
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements":  views,
		"totalXP":       state.TotalXP,
		"level":         state.Level,
		"unlockedCount": state.UnlockedCount,
	})
}

// GetSummary handles GET /achievements/summary: totals for the profile header.
func (h *AchievementHandler) GetSummary(c *gin.Context) {
	userID := c.GetString("userId")
	session := h.manager.BeginSession(c.Request.Context(), userID)
	state := session.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"totalXP":       state.TotalXP,
		"level":         state.Level,
		"unlockedCount": state.UnlockedCount,
		"totalCount":    h.manager.Catalog().Len(),
	})
}

type progressRequest struct {
	Amount int `json:"amount"`
}

// RecordProgress handles POST /progress/:id, the trigger endpoint page
// components call opportunistically. Unknown ids are deliberately accepted:
// a stale frontend must never see its telemetry calls fail.
func (h *AchievementHandler) RecordProgress(c *gin.Context) {
	userID := c.GetString("userId")
	achievementID := c.Param("id")

	var req progressRequest
	// Body is optional; a bare POST means amount 1.
	_ = c.ShouldBindJSON(&req)
	if req.Amount <= 0 {
		req.Amount = 1
	}

	session := h.manager.BeginSession(c.Request.Context(), userID)
	session.Increment(achievementID, req.Amount)

	rec, known := session.Achievement(achievementID)
	if !known {
		c.JSON(http.StatusAccepted, gin.H{"status": "ignored"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":   "recorded",
		"progress": rec.Progress,
		"unlocked": rec.Unlocked,
		"totalXP":  session.TotalXP(),
		"level":    session.Level(),
	})
}
