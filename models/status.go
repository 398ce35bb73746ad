package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation status names. Statuses live in their own table so admins can
// resolve them by id, but the set is closed and seeded at boot.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Status struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeedStatuses makes sure every known status name exists.
func SeedStatuses(db *gorm.DB) error {
	for _, name := range []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		st := Status{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&st).Error; err != nil {
			return err
		}
	}
	return nil
}
