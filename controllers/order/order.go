package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/middleware"
	"github.com/Orekusandoru/online-store/models"
	"github.com/Orekusandoru/online-store/pkg/logger"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items       []OrderItemInput `json:"items" binding:"required"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Address     string           `json:"address"`
	PaymentType string           `json:"payment_type"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// BuildOrder validates the request and assembles the order with its items.
// TotalPrice is recomputed server-side from quantity x price.
func BuildOrder(userID *uint, req CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}

	if userID == nil {
		if req.Name == "" || req.Email == "" || req.Phone == "" || req.Address == "" {
			return nil, errors.New("guest orders require name, email, phone and address")
		}
	}

	var total float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 || item.Price <= 0 {
			return nil, errors.New("items require a positive quantity and price")
		}
		total += float64(item.Quantity) * item.Price
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &models.Order{
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		TotalPrice:  total,
		Status:      models.OrderStatusPending,
		PaymentType: req.PaymentType,
		Items:       items,
	}, nil
}

// CreateOrder persists one order row plus one item row per entry, all inside
// a single transaction. A failure on any item rolls back the whole order.
func CreateOrder(db *gorm.DB, userID *uint, req CreateOrderRequest) (*models.Order, error) {
	order, err := BuildOrder(userID, req)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// -------- Handlers --------

// POST /orders — accepts an authenticated user or a full guest contact tuple.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var userID *uint
		if id, ok := middleware.UserID(c); ok {
			userID = &id
		}

		order, err := CreateOrder(db, userID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{"message": "Order created", "orderId": order.ID})
	}
}

// GET /orders (admin/seller)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders-details (admin/seller) — orders with their items preloaded.
func GetOrdersDetailsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /my-orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:id (admin/seller) — status change through the transition
// graph.
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := TransitionStatus(&order, newStatus); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&order).Update("status", order.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
	}
}

// DELETE /orders/:id (admin/seller)
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", id).Delete(&models.Order{}).Error
		})
		if err != nil {
			logger.Error("failed to delete order", "order_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// MarkOrderPaid flips an order to paid through the transition graph. Used by
// the payment callback.
func MarkOrderPaid(db *gorm.DB, orderID uint) error {
	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		return err
	}
	if err := TransitionStatus(&order, models.OrderStatusPaid); err != nil {
		return err
	}
	return db.Model(&order).Update("status", order.Status).Error
}
