package handlers

import (
	"net/http"
	"strings"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/internal/services"
	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
	"github.com/FahadTahat/btec-companion-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler binds identity to achievement session lifecycle: login hydrates
// a session, logout discards it.
type AuthHandler struct {
	manager *achievements.Manager
}

func NewAuthHandler(m *achievements.Manager) *AuthHandler {
	return &AuthHandler{manager: m}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration payload"})
		return
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !utils.ValidateUsername(req.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be 3-30 characters (letters, digits, _ or -)"})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email or username already in use"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := models.User{
		ID:       utils.GenerateID(),
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	services.LogActivity(user.ID, models.ActivityNewUser, "", "joined the community")

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	// A brand-new user has nothing to hydrate, but starting the session here
	// keeps the lifecycle uniform with login.
	h.manager.BeginSession(c.Request.Context(), user.ID)

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login payload"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	// Hydrate the achievement session for the login. A store failure inside
	// falls back to locked defaults; login never blocks on it.
	session := h.manager.BeginSession(c.Request.Context(), user.ID)
	state := session.Snapshot()

	logger.Info().Str("user_id", user.ID).Msg("User logged in")

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
		"achievements": gin.H{
			"totalXP":       state.TotalXP,
			"level":         state.Level,
			"unlockedCount": state.UnlockedCount,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("userId")

	// Discard in-memory achievement state. Not a save point: whatever the
	// writer already flushed is durable, anything in flight may be lost.
	h.manager.EndSession(userID)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	session := h.manager.BeginSession(c.Request.Context(), userID)
	state := session.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"achievements": gin.H{
			"totalXP":       state.TotalXP,
			"level":         state.Level,
			"unlockedCount": state.UnlockedCount,
		},
	})
}
