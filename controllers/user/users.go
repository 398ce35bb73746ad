package userControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sheylasoledispa/veterinaria-pozovet/middleware"
	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

// GetProfile returns the authenticated user.
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.CurrentUser(c))
	}
}

// GetAllUsers lists users for administrators.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetUserHistory lists the audit trail for one user, newest first.
// URL param: /users/:id/history
func GetUserHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var entries []models.UserHistory
		if err := db.Where("user_id = ?", id).
			Order("created_at DESC").
			Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
