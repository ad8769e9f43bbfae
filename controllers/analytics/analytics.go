package analyticsControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Orekusandoru/online-store/pkg/logger"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type PopularProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	TotalSold int64  `json:"total_sold"`
}

// BuildOrderFilters assembles the WHERE clause shared by every aggregate
// below. The alias names the orders table in the enclosing query.
func BuildOrderFilters(alias, startDate, endDate, category, status string) (string, []interface{}) {
	filters := []string{alias + ".created_at BETWEEN ? AND ?"}
	args := []interface{}{startDate, endDate}

	if category != "" {
		filters = append(filters,
			alias+".id IN (SELECT order_id FROM order_items WHERE product_id IN (SELECT id FROM products WHERE category_id = ?))")
		args = append(args, category)
	}
	if status != "" {
		filters = append(filters, alias+".status = ?")
		args = append(args, status)
	}

	return "WHERE " + strings.Join(filters, " AND "), args
}

// GET /analytics?startDate&endDate&category&status (admin/seller)
func GetAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		startDate := c.Query("startDate")
		endDate := c.Query("endDate")
		if startDate == "" || endDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required"})
			return
		}
		category := c.Query("category")
		status := c.Query("status")

		where, args := BuildOrderFilters("orders", startDate, endDate, category, status)

		var totalOrders int64
		if err := db.Raw("SELECT COUNT(*) FROM orders "+where, args...).
			Scan(&totalOrders).Error; err != nil {
			fail(c, err)
			return
		}

		var totalRevenue float64
		if err := db.Raw("SELECT COALESCE(SUM(total_price), 0) FROM orders "+where, args...).
			Scan(&totalRevenue).Error; err != nil {
			fail(c, err)
			return
		}

		averageOrderValue := 0.0
		if totalOrders > 0 {
			averageOrderValue = totalRevenue / float64(totalOrders)
		}

		var newCustomers int64
		if err := db.Raw("SELECT COUNT(DISTINCT user_id) FROM orders "+where+" AND user_id IS NOT NULL", args...).
			Scan(&newCustomers).Error; err != nil {
			fail(c, err)
			return
		}

		var orderDistribution []StatusCount
		if err := db.Raw("SELECT status, COUNT(*) AS count FROM orders "+where+" GROUP BY status", args...).
			Scan(&orderDistribution).Error; err != nil {
			fail(c, err)
			return
		}

		var revenueByDay []DayRevenue
		if err := db.Raw(
			"SELECT DATE(created_at) AS day, SUM(total_price) AS revenue, COUNT(*) AS orders FROM orders "+
				where+" GROUP BY day ORDER BY day", args...).
			Scan(&revenueByDay).Error; err != nil {
			fail(c, err)
			return
		}

		popWhere, popArgs := BuildOrderFilters("o", startDate, endDate, category, status)
		var popularProducts []PopularProduct
		if err := db.Raw(
			`SELECT oi.product_id, p.name, SUM(oi.quantity) AS total_sold
			 FROM order_items oi
			 JOIN products p ON oi.product_id = p.id
			 JOIN orders o ON oi.order_id = o.id `+popWhere+`
			 GROUP BY oi.product_id, p.name
			 ORDER BY total_sold DESC
			 LIMIT 10`, popArgs...).
			Scan(&popularProducts).Error; err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalOrders":       totalOrders,
			"totalRevenue":      totalRevenue,
			"averageOrderValue": averageOrderValue,
			"newCustomers":      newCustomers,
			"orderDistribution": orderDistribution,
			"revenueByDay":      revenueByDay,
			"popularProducts":   popularProducts,
		})
	}
}

func fail(c *gin.Context, err error) {
	logger.Error("analytics query failed", "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
}
