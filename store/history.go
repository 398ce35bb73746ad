package store

import (
	"log"

	"gorm.io/gorm"

	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

// GormHistory appends UserHistory rows outside the checkout transaction.
// A failed append is logged and dropped; it must never undo a committed
// reservation.
type GormHistory struct {
	db *gorm.DB
}

func NewGormHistory(db *gorm.DB) *GormHistory {
	return &GormHistory{db: db}
}

func (h *GormHistory) Record(subjectID, actorID uint, kind, detail string) {
	actor := actorID
	entry := models.UserHistory{
		UserID:  subjectID,
		ActorID: &actor,
		Kind:    kind,
		Detail:  detail,
	}
	if err := h.db.Create(&entry).Error; err != nil {
		log.Printf("failed to record history entry (%s): %v", kind, err)
	}
}
