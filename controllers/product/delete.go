package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/models"
	"github.com/Orekusandoru/online-store/pkg/logger"
)

// DELETE /products/:id (admin/seller). The row is snapshotted into
// archived_products before removal so historical order items keep a name and
// price to resolve against.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			archived := product.Archive()
			if err := tx.Create(&archived).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			logger.Error("failed to archive and delete product", "product_id", product.ID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
