package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/Sheylasoledispa/veterinaria-pozovet/controllers/auth"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authControllers.Login(db))
		auth.POST("/register", authControllers.Register(db))
	}
}
