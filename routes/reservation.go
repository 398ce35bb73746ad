package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reservationControllers "github.com/Sheylasoledispa/veterinaria-pozovet/controllers/reservation"
	"github.com/Sheylasoledispa/veterinaria-pozovet/middleware"
	"github.com/Sheylasoledispa/veterinaria-pozovet/services/reservation"
)

func SetupReservationRoutes(r *gin.Engine, db *gorm.DB, engine *reservation.Engine) {
	// websocket endpoint for real-time reservation updates
	r.GET("/reservations/ws", reservationControllers.ReservationWebSocketHandler)

	reservations := r.Group("/reservations", middleware.ValidateToken(db))
	{
		// Check out the submitted cart
		reservations.POST("", reservationControllers.CreateReservation(engine))

		// Current user's reservations
		reservations.GET("", reservationControllers.GetMyReservations(engine))

		// All reservations, optionally filtered (admin)
		reservations.GET("/admin", reservationControllers.GetAllReservations(engine))

		// Excel export of the admin view
		reservations.GET("/export", reservationControllers.ExportReservationsToExcel(engine))

		// Single reservation with its lines (invoice read model)
		reservations.GET("/:id", reservationControllers.GetReservationByID(engine))

		// Cancel a pending reservation (owner or admin)
		reservations.DELETE("/:id", reservationControllers.CancelReservation(engine))

		// Move to an arbitrary status (admin)
		reservations.PUT("/:id/status", reservationControllers.UpdateReservationStatus(engine))
	}
}
