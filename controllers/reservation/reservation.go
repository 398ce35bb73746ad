package reservationControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sheylasoledispa/veterinaria-pozovet/middleware"
	"github.com/Sheylasoledispa/veterinaria-pozovet/services/reservation"
)

// -------- Request Structs --------

type CreateReservationRequest struct {
	Items []reservation.CartItem `json:"items" binding:"required"`
	Notes string                 `json:"notes"`
}

type UpdateStatusRequest struct {
	StatusID uint   `json:"status_id"`
	Status   string `json:"status"`
}

// -------- Helpers --------

func statusForError(err error) int {
	var stockErr *reservation.InsufficientStockError
	switch {
	case errors.Is(err, reservation.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, reservation.ErrNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, reservation.ErrEmptyCart),
		errors.Is(err, reservation.ErrInvalidQuantity),
		errors.Is(err, reservation.ErrUnknownProduct),
		errors.Is(err, reservation.ErrUnknownStatus),
		errors.Is(err, reservation.ErrNotPending),
		errors.As(err, &stockErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func reservationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return 0, false
	}
	return uint(id), true
}

// -------- Handlers --------

// CreateReservation checks out the submitted cart for the current user.
func CreateReservation(engine *reservation.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := middleware.CurrentUser(c)
		res, err := engine.Create(user, req.Items, req.Notes)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		BroadcastReservation(res)
		c.JSON(http.StatusCreated, res)
	}
}

// GetMyReservations lists the current user's reservations, newest first.
func GetMyReservations(engine *reservation.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		out, err := engine.ListForUser(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetAllReservations lists every reservation for administrators.
// Query param: ?q= filters by purchaser name, national id or invoice code.
func GetAllReservations(engine *reservation.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		out, err := engine.ListAll(user, c.Query("q"))
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetReservationByID returns one reservation with its lines. This is the
// read model invoice rendering consumes.
func GetReservationByID(engine *reservation.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := reservationID(c)
		if !ok {
			return
		}
		res, err := engine.Get(middleware.CurrentUser(c), id)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// CancelReservation cancels a pending reservation and restores stock.
func CancelReservation(engine *reservation.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := reservationID(c)
		if !ok {
			return
		}
		res, err := engine.Cancel(middleware.CurrentUser(c), id)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		BroadcastReservation(res)
		c.JSON(http.StatusOK, res)
	}
}

// UpdateReservationStatus moves a reservation to an arbitrary status
// (admin only). No stock side effects.
func UpdateReservationStatus(engine *reservation.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := reservationID(c)
		if !ok {
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res, err := engine.SetStatus(middleware.CurrentUser(c), id, req.StatusID, req.Status)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		BroadcastReservation(res)
		c.JSON(http.StatusOK, res)
	}
}
