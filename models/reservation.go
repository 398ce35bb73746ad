package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reservation is a customer's checkout record. Reservations are never
// deleted; cancellation only flips the status and restores stock.
type Reservation struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	UserID            uint              `gorm:"not null;index" json:"user_id"`
	User              User              `gorm:"foreignKey:UserID" json:"user"`
	StatusID          uint              `gorm:"not null" json:"status_id"`
	Status            Status            `gorm:"foreignKey:StatusID" json:"status"`
	InvoiceCode       string            `gorm:"size:20;uniqueIndex;not null" json:"invoice_code"`
	Total             decimal.Decimal   `gorm:"type:numeric(10,2)" json:"total"`
	Notes             string            `json:"notes"`
	EstimatedDelivery *time.Time        `json:"estimated_delivery,omitempty"`
	Items             []ReservationItem `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	CreatedBy         uint              `json:"created_by"`
	UpdatedBy         uint              `json:"updated_by"`
}

// ReservationItem is one product line of a reservation. UnitPrice is a
// snapshot of the catalog price at checkout time and never changes after
// that, even when the catalog price does.
type ReservationItem struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ReservationID uint            `gorm:"index;not null" json:"reservation_id"`
	ProductID     uint            `gorm:"not null" json:"product_id"`
	Product       Product         `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CreatedBy     uint            `json:"created_by"`
	UpdatedBy     uint            `json:"updated_by"`
}

// BeforeSave keeps the subtotal consistent with quantity × unit price on
// every write of the line itself.
func (it *ReservationItem) BeforeSave(*gorm.DB) error {
	it.Subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
	return nil
}
