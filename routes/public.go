package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/config"
	categoryControllers "github.com/Orekusandoru/online-store/controllers/category"
	liqpayControllers "github.com/Orekusandoru/online-store/controllers/liqpay"
	orderControllers "github.com/Orekusandoru/online-store/controllers/order"
	productControllers "github.com/Orekusandoru/online-store/controllers/product"
	reviewControllers "github.com/Orekusandoru/online-store/controllers/review"
	"github.com/Orekusandoru/online-store/middleware"
)

// SetupPublicRoutes registers catalog browsing, order placement and the
// payment bridge. Order placement runs behind OptionalAuth so both
// authenticated and guest checkouts land on the same handler.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/products/:id/reviews", reviewControllers.GetReviews(db))

	r.GET("/categories", categoryControllers.GetCategories(db))

	r.GET("/archived-products", productControllers.GetAllArchivedProducts(db))
	r.GET("/archived-products/:id", productControllers.GetArchivedProductByID(db))

	r.POST("/orders", middleware.OptionalAuth(cfg), orderControllers.CreateOrderHandler(db))
	r.GET("/orders/:id", middleware.OptionalAuth(cfg), orderControllers.GetOrderByIDHandler(db))

	r.POST("/liqpay-initiate", liqpayControllers.Initiate(db, cfg))
	r.POST("/liqpay-callback", liqpayControllers.Callback(db, cfg))
}
