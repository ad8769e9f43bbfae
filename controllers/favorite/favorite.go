package favoriteControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Orekusandoru/online-store/middleware"
	"github.com/Orekusandoru/online-store/models"
)

type FavoriteInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

// GET /favorites — favorite products joined with their catalog rows.
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var products []models.Product
		if err := db.Model(&models.Product{}).
			Joins("JOIN favorites ON favorites.product_id = products.id").
			Where("favorites.user_id = ?", userID).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// POST /favorites — repeat adds are a no-op.
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}

		favorite := models.Favorite{UserID: userID, ProductID: input.ProductID}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
	}
}

// DELETE /favorites — productId comes from query or body.
func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var productID uint
		if q := c.Query("productId"); q != "" {
			id, err := strconv.ParseUint(q, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
				return
			}
			productID = uint(id)
		} else {
			var input FavoriteInput
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
				return
			}
			productID = input.ProductID
		}

		if err := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.Favorite{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
	}
}
