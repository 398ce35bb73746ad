// Package store provides the GORM-backed persistence for the reservation
// engine.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
	"github.com/Sheylasoledispa/veterinaria-pozovet/services/reservation"
)

type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Transact runs fn inside one database transaction. Row locks taken through
// the Tx are held until commit or rollback.
func (s *Gorm) Transact(fn func(tx reservation.Tx) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

func (s *Gorm) ReservationByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := s.db.
		Preload("User").
		Preload("Status").
		Preload("Items").
		Preload("Items.Product").
		First(&res, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reservation.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Gorm) ListForUser(userID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Status").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *Gorm) ListAll(filter string) ([]models.Reservation, error) {
	q := s.db.
		Preload("User").
		Preload("Status").
		Preload("Items").
		Preload("Items.Product").
		Order("reservations.created_at DESC")
	if filter != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(filter)) + "%"
		q = q.Joins("JOIN users ON users.id = reservations.user_id").
			Where(`LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ?
				OR LOWER(users.national_id) LIKE ? OR LOWER(reservations.invoice_code) LIKE ?`,
				like, like, like, like)
	}
	var out []models.Reservation
	err := q.Find(&out).Error
	return out, err
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) ProductsForUpdate(ids []uint) ([]models.Product, error) {
	var products []models.Product
	err := t.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (t *gormTx) SaveProductStock(p *models.Product) error {
	return t.db.Model(p).Update("stock", p.Stock).Error
}

func (t *gormTx) StatusByName(name string) (*models.Status, error) {
	var st models.Status
	err := t.db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (t *gormTx) StatusByID(id uint) (*models.Status, error) {
	var st models.Status
	err := t.db.First(&st, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// CreateReservation inserts through a savepoint so a unique violation on
// the invoice code aborts only the insert, leaving the outer transaction
// usable for the engine's retry.
func (t *gormTx) CreateReservation(r *models.Reservation) error {
	err := t.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(r).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return reservation.ErrDuplicateInvoiceCode
	}
	return err
}

func (t *gormTx) CreateItems(items []models.ReservationItem) error {
	if len(items) == 0 {
		return nil
	}
	return t.db.Omit(clause.Associations).Create(&items).Error
}

func (t *gormTx) ReservationForUpdate(id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := t.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&res, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reservation.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// Associations load after the row lock is held.
	if err := t.db.Preload("Status").Preload("Items").First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (t *gormTx) SaveReservation(r *models.Reservation) error {
	return t.db.Omit(clause.Associations).Save(r).Error
}

func (t *gormTx) LastInvoiceCode(prefix string) (string, error) {
	var res models.Reservation
	err := t.db.
		Where("invoice_code LIKE ?", prefix+"%").
		Order("invoice_code DESC").
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return res.InvoiceCode, nil
}
