package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Sheylasoledispa/veterinaria-pozovet/controllers/product"
	"github.com/Sheylasoledispa/veterinaria-pozovet/middleware"
	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetAllProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))

		manage := products.Group("", middleware.ValidateToken(db),
			middleware.RequireRole(models.Role.CanManageCatalog))
		{
			manage.POST("", productControllers.CreateProduct(db))
			manage.PUT("/:id", productControllers.UpdateProduct(db))
			manage.DELETE("/:id", productControllers.DeleteProduct(db))
		}
	}
}
