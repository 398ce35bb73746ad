package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `json:"description"`
	Category    string          `gorm:"size:50" json:"category"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CreatedBy   uint            `json:"created_by"`
	UpdatedBy   uint            `json:"updated_by"`
}

// Available reports whether the product can still be reserved.
func (p *Product) Available() bool {
	return p.Stock > 0
}
