package reservation

import "github.com/Sheylasoledispa/veterinaria-pozovet/models"

// Get returns one reservation with its lines, for the owner or anyone who
// may view all reservations. This is the read model the invoice renderer
// consumes.
func (e *Engine) Get(actor *models.User, id uint) (*models.Reservation, error) {
	res, err := e.store.ReservationByID(id)
	if err != nil {
		return nil, err
	}
	if res.UserID != actor.ID && !actor.Role.CanViewAllReservations() {
		return nil, ErrNotAllowed
	}
	return res, nil
}

// ListForUser returns the user's own reservations, newest first.
func (e *Engine) ListForUser(userID uint) ([]models.Reservation, error) {
	return e.store.ListForUser(userID)
}

// ListAll returns every reservation, newest first, optionally filtered by
// purchaser name, national id or invoice code.
func (e *Engine) ListAll(actor *models.User, filter string) ([]models.Reservation, error) {
	if !actor.Role.CanViewAllReservations() {
		return nil, ErrNotAllowed
	}
	return e.store.ListAll(filter)
}
