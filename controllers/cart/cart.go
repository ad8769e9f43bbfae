package cartControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Orekusandoru/online-store/middleware"
	"github.com/Orekusandoru/online-store/models"
)

type SaveCartRequest struct {
	Items []models.CartItem `json:"items"`
}

// GET /cart — the server-side cart is canonical for authenticated users.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": cart.Items})
	}
}

// POST /cart — full-array upsert, last writer wins.
func SaveCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req SaveCartRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "items must be an array"})
			return
		}

		if err := upsertCart(db, userID, req.Items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart saved"})
	}
}

// POST /cart/merge — folds a client-held guest cart into the server cart on
// login, summing quantities of duplicate products.
func MergeCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req SaveCartRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "items must be an array"})
			return
		}

		var existing []models.CartItem
		var cart models.Cart
		err := db.Where("user_id = ?", userID).First(&cart).Error
		switch {
		case err == nil:
			if len(cart.Items) > 0 {
				if err := json.Unmarshal(cart.Items, &existing); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
					return
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No server cart yet, merge into an empty one.
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		merged := MergeCartItems(existing, req.Items)
		if err := upsertCart(db, userID, merged); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart merged", "items": merged})
	}
}

// MergeCartItems folds guest items into the server items. Duplicate product
// ids sum their quantities; server-side name/price win.
func MergeCartItems(server, guest []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, len(server))
	copy(merged, server)

	index := make(map[uint]int, len(merged))
	for i, item := range merged {
		index[item.ProductID] = i
	}

	for _, item := range guest {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

func upsertCart(db *gorm.DB, userID uint, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	cart := models.Cart{
		UserID:    userID,
		Items:     datatypes.JSON(raw),
		UpdatedAt: time.Now(),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&cart).Error
}
