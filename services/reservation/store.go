package reservation

import "github.com/Sheylasoledispa/veterinaria-pozovet/models"

// CartItem is one requested line of a checkout.
type CartItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// Tx is the slice of the store visible inside a single transaction. Locks
// taken by ProductsForUpdate and ReservationForUpdate are held until the
// transaction commits or rolls back.
type Tx interface {
	// ProductsForUpdate resolves product rows under an exclusive row lock.
	// Missing ids are simply absent from the result.
	ProductsForUpdate(ids []uint) ([]models.Product, error)
	SaveProductStock(p *models.Product) error

	// StatusByName resolves a status case-insensitively; nil when absent.
	StatusByName(name string) (*models.Status, error)
	StatusByID(id uint) (*models.Status, error)

	// CreateReservation persists a new reservation and returns
	// ErrDuplicateInvoiceCode on an invoice-code collision, leaving the
	// surrounding transaction usable.
	CreateReservation(r *models.Reservation) error
	CreateItems(items []models.ReservationItem) error

	// ReservationForUpdate loads a reservation with its status and items
	// under an exclusive row lock. Returns ErrNotFound when absent.
	ReservationForUpdate(id uint) (*models.Reservation, error)
	SaveReservation(r *models.Reservation) error

	// LastInvoiceCode returns the lexicographically highest invoice code
	// with the given prefix, or "" when none exists.
	LastInvoiceCode(prefix string) (string, error)
}

// Store is the persistence contract of the engine. Transact runs fn inside
// one all-or-nothing transaction.
type Store interface {
	Transact(fn func(tx Tx) error) error

	ReservationByID(id uint) (*models.Reservation, error)
	ListForUser(userID uint) ([]models.Reservation, error)
	ListAll(filter string) ([]models.Reservation, error)
}

// HistorySink appends immutable audit entries. Calls are best effort: the
// engine invokes it only after a successful commit and ignores failures.
type HistorySink interface {
	Record(subjectID, actorID uint, kind, detail string)
}
