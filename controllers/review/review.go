package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Orekusandoru/online-store/middleware"
	"github.com/Orekusandoru/online-store/models"
	"github.com/Orekusandoru/online-store/pkg/logger"
)

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ReviewWithUser is a review row joined with the reviewer's name.
type ReviewWithUser struct {
	models.Review
	UserName string `json:"user_name"`
}

// POST /products/:id/reviews — upsert on (product_id, user_id), then
// recompute the product's rating aggregate from all current reviews.
func AddOrUpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID := c.Param("id")

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		review := models.Review{
			ProductID: product.ID,
			UserID:    userID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment"}),
		}).Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}

		// Read-after-write aggregate, O(review count) per write. Fine at
		// this scale.
		var stats struct {
			Avg float64
			Cnt int
		}
		if err := db.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
			Where("product_id = ?", product.ID).
			Scan(&stats).Error; err != nil {
			logger.Error("failed to recompute rating", "product_id", product.ID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
			return
		}

		if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
			Updates(map[string]interface{}{
				"rating":       stats.Avg,
				"rating_count": stats.Cnt,
			}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review saved"})
	}
}

// GET /products/:id/reviews
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		var reviews []ReviewWithUser
		if err := db.Model(&models.Review{}).
			Select("reviews.*, users.name AS user_name").
			Joins("LEFT JOIN users ON users.id = reviews.user_id").
			Where("reviews.product_id = ?", productID).
			Order("reviews.created_at DESC").
			Scan(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}
