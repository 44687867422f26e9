package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

const maxChatMessageRunes = 1000

// IDs advanced when a student posts a chat message. The engine treats each as
// an independent counter; the tiered ones simply have larger targets.
var chatTriggerIDs = []string{"ice-breaker", "conversationalist", "chatterbox"}

type ChatHandler struct {
	manager *achievements.Manager
}

func NewChatHandler(m *achievements.Manager) *ChatHandler {
	return &ChatHandler{manager: m}
}

// GetMessages handles GET /chat/messages?room=community&before=<ts>&limit=50
func (h *ChatHandler) GetMessages(c *gin.Context) {
	room := c.DefaultQuery("room", "community")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	q := database.DB.
		Preload("Sender").
		Where("room = ?", room).
		Order("created_at desc").
		Limit(limit)

	if before := c.Query("before"); before != "" {
		ts, err := time.Parse(time.RFC3339, before)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'before' cursor"})
			return
		}
		q = q.Where("created_at < ?", ts)
	}

	var messages []models.ChatMessage
	if err := q.Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "room": room})
}

type postMessageRequest struct {
	Room    string `json:"room"`
	Content string `json:"content" binding:"required"`
}

// PostMessage handles POST /chat/messages. Persists, relays over socket.io,
// and advances the community chat achievements.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID := c.GetString("userId")

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content required"})
		return
	}
	if req.Room == "" {
		req.Room = "community"
	}

	content := utils.SanitizeChatMessage(req.Content, maxChatMessageRunes)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is empty after sanitization"})
		return
	}

	// Per-user spam counter on top of the per-IP middleware limiter.
	if database.Redis != nil {
		ok, err := database.CheckRateLimit("chat:"+userID, 30, time.Minute)
		if err == nil && !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Slow down a little"})
			return
		}
	}

	msg := models.ChatMessage{
		Room:     req.Room,
		SenderID: userID,
		Content:  content,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	database.DB.Preload("Sender").First(&msg, "id = ?", msg.ID)

	BroadcastChatMessage(req.Room, msg)

	session := h.manager.BeginSession(c.Request.Context(), userID)
	for _, id := range chatTriggerIDs {
		session.Increment(id, 1)
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
