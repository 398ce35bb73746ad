package models

import "time"

// UserHistory is an append-only audit trail entry. Rows are written by the
// reservation engine after successful state changes and are never updated.
type UserHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ActorID   *uint     `json:"actor_id,omitempty"`
	Kind      string    `gorm:"size:50" json:"kind"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
