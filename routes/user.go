package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Sheylasoledispa/veterinaria-pozovet/controllers/user"
	"github.com/Sheylasoledispa/veterinaria-pozovet/middleware"
	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users", middleware.ValidateToken(db))
	{
		users.GET("/me", userControllers.GetProfile())

		admin := users.Group("", middleware.RequireRole(models.Role.CanViewAllReservations))
		{
			admin.GET("", userControllers.GetAllUsers(db))
			admin.GET("/:id/history", userControllers.GetUserHistory(db))
		}
	}
}
