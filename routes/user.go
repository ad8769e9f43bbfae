package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/config"
	cartControllers "github.com/Orekusandoru/online-store/controllers/cart"
	favoriteControllers "github.com/Orekusandoru/online-store/controllers/favorite"
	orderControllers "github.com/Orekusandoru/online-store/controllers/order"
	profileControllers "github.com/Orekusandoru/online-store/controllers/profile"
	reviewControllers "github.com/Orekusandoru/online-store/controllers/review"
	"github.com/Orekusandoru/online-store/middleware"
)

// SetupUserRoutes registers the JWT-protected endpoints of a signed-in
// customer.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.RequireAuth(cfg))
	{
		userGroup.GET("/cart", cartControllers.GetCart(db))
		userGroup.POST("/cart", cartControllers.SaveCart(db))
		userGroup.POST("/cart/merge", cartControllers.MergeCart(db))

		userGroup.GET("/favorites", favoriteControllers.GetFavorites(db))
		userGroup.POST("/favorites", favoriteControllers.AddFavorite(db))
		userGroup.DELETE("/favorites", favoriteControllers.RemoveFavorite(db))

		userGroup.GET("/profile", profileControllers.GetProfile(db))
		userGroup.PUT("/profile", profileControllers.UpdateProfile(db))

		userGroup.GET("/my-orders", orderControllers.GetMyOrdersHandler(db))

		userGroup.POST("/products/:id/reviews", reviewControllers.AddOrUpdateReview(db))
	}
}
