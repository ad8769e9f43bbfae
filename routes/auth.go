package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/auth"
	"github.com/Orekusandoru/online-store/config"
	"github.com/Orekusandoru/online-store/pkg/mailer"
)

// SetupAuthRoutes registers all /auth/* endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, m *mailer.Mailer) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db, cfg))
		authGroup.POST("/login", auth.Login(db, cfg))
		authGroup.POST("/forgot-password", auth.ForgotPassword(db, m))
		authGroup.POST("/reset-password", auth.ResetPassword(db))
	}
}
