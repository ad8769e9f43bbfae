package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/models"
)

// GET /archived-products
func GetAllArchivedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.ArchivedProduct
		if err := db.Order("archived_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch archived products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /archived-products/:id
func GetArchivedProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.ArchivedProduct
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Archived product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch archived product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
