package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

// GetAllProducts lists the catalog, optionally filtered by category.
// Query params: ?category=...&available=true
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Order("name ASC")
		if category := c.Query("category"); category != "" {
			q = q.Where("category = ?", category)
		}
		if c.Query("available") == "true" {
			q = q.Where("stock > 0")
		}

		var products []models.Product
		if err := q.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
