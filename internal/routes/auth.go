package routes

import (
	"github.com/FahadTahat/btec-companion-backend/internal/handlers"
	"github.com/FahadTahat/btec-companion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(r gin.IRouter, h *handlers.AuthHandler) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", middleware.AuthMiddleware(), h.Logout)
	r.GET("/me", middleware.AuthMiddleware(), h.Me)
}
