package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/config"
	analyticsControllers "github.com/Orekusandoru/online-store/controllers/analytics"
	categoryControllers "github.com/Orekusandoru/online-store/controllers/category"
	orderControllers "github.com/Orekusandoru/online-store/controllers/order"
	productControllers "github.com/Orekusandoru/online-store/controllers/product"
	uploadControllers "github.com/Orekusandoru/online-store/controllers/upload"
	"github.com/Orekusandoru/online-store/middleware"
	"github.com/Orekusandoru/online-store/models"
)

// SetupAdminRoutes registers endpoints gated to the admin and seller roles.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/")
	adminGroup.Use(middleware.RequireAuth(cfg), middleware.RequireRole(models.RoleAdmin, models.RoleSeller))
	{
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PATCH("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))

		adminGroup.POST("/categories", categoryControllers.CreateCategory(db))
		adminGroup.PATCH("/categories/:id", categoryControllers.UpdateCategory(db))
		adminGroup.DELETE("/categories/:id", categoryControllers.DeleteCategory(db))

		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders-details", orderControllers.GetOrdersDetailsHandler(db))
		adminGroup.PUT("/orders/:id", orderControllers.UpdateOrderHandler(db))
		adminGroup.DELETE("/orders/:id", orderControllers.DeleteOrderHandler(db))

		// Live order feed for the dashboard
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

		adminGroup.GET("/analytics", analyticsControllers.GetAnalytics(db))

		adminGroup.POST("/upload", uploadControllers.UploadImage(cfg))
	}
}
