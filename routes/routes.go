package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/config"
	"github.com/Orekusandoru/online-store/pkg/mailer"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, m *mailer.Mailer) {
	// Public auth endpoints
	SetupAuthRoutes(r, db, cfg, m)

	// Catalog browsing, order placement, payment bridge
	SetupPublicRoutes(r, db, cfg)

	// JWT-protected user endpoints
	SetupUserRoutes(r, db, cfg)

	// Admin/seller endpoints
	SetupAdminRoutes(r, db, cfg)
}
