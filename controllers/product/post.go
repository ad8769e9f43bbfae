package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/models"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	ImageURL    string   `json:"image_url"`
	ScreenSize  *float64 `json:"screen_size"`
	Resolution  *string  `json:"resolution"`
	RAM         *int     `json:"ram"`
	Storage     *int     `json:"storage"`
	Processor   *string  `json:"processor"`
	Battery     *int     `json:"battery"`
	RefreshRate *int     `json:"refresh_rate"`
}

// POST /products (admin/seller)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			CategoryID:  input.CategoryID,
			ImageURL:    input.ImageURL,
			ScreenSize:  input.ScreenSize,
			Resolution:  input.Resolution,
			RAM:         input.RAM,
			Storage:     input.Storage,
			Processor:   input.Processor,
			Battery:     input.Battery,
			RefreshRate: input.RefreshRate,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
