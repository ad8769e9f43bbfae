package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/models"
)

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *uint    `json:"category_id"`
	ImageURL    *string  `json:"image_url"`
	ScreenSize  *float64 `json:"screen_size"`
	Resolution  *string  `json:"resolution"`
	RAM         *int     `json:"ram"`
	Storage     *int     `json:"storage"`
	Processor   *string  `json:"processor"`
	Battery     *int     `json:"battery"`
	RefreshRate *int     `json:"refresh_rate"`
}

// PATCH /products/:id (admin/seller)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			updates["category_id"] = *input.CategoryID
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.ScreenSize != nil {
			updates["screen_size"] = *input.ScreenSize
		}
		if input.Resolution != nil {
			updates["resolution"] = *input.Resolution
		}
		if input.RAM != nil {
			updates["ram"] = *input.RAM
		}
		if input.Storage != nil {
			updates["storage"] = *input.Storage
		}
		if input.Processor != nil {
			updates["processor"] = *input.Processor
		}
		if input.Battery != nil {
			updates["battery"] = *input.Battery
		}
		if input.RefreshRate != nil {
			updates["refresh_rate"] = *input.RefreshRate
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
