package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One row per free-text or voice health note, stored as an AI summary.
// Shared by the text and voice logging endpoints.
type TextRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time `json:"date"`
	AISummary *string   `gorm:"column:ai_summary" json:"ai_summary"`
}

func (TextRecord) TableName() string { return "text_records" }

func (r *TextRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Date.IsZero() {
		r.Date = time.Now().UTC()
	}
	return nil
}
