package api

import (
	"net/http"

	"gauth-backend/internal/auth/delivery"
	authUsecase "gauth-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase) {
	authHandler := delivery.NewAuthHandler(authUsecase)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/profile", delivery.AuthMiddleware(authUsecase), authHandler.Profile)

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}
}
