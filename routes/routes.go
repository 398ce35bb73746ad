package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sheylasoledispa/veterinaria-pozovet/services/reservation"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, engine *reservation.Engine) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Catalog routes (reads public, writes admin)
	SetupProductRoutes(r, db)

	// Reservation routes (JWT-protected)
	SetupReservationRoutes(r, db, engine)

	// User/profile routes
	SetupUserRoutes(r, db)
}
