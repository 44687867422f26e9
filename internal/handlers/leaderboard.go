package handlers

import (
	"net/http"
	"strconv"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	manager *achievements.Manager
}

func NewLeaderboardHandler(m *achievements.Manager) *LeaderboardHandler {
	return &LeaderboardHandler{manager: m}
}

// GetLeaderboard handles GET /leaderboard?limit=50
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := services.GetLeaderboard(h.manager.Catalog(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
