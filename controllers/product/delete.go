package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

// DeleteProduct removes a product from the catalog. Products referenced by
// reservation lines cannot be deleted: the lines carry the price snapshot
// but still point at the product row.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var refs int64
		if err := db.Model(&models.ReservationItem{}).
			Where("product_id = ?", id).Count(&refs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check reservations"})
			return
		}
		if refs > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is referenced by reservations"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
