package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

// RequireRole gates a route group on a capability predicate, e.g.
// RequireRole(models.Role.CanManageCatalog). Must run after ValidateToken.
func RequireRole(allowed func(models.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !allowed(user.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
