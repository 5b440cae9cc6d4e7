package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One row per uploaded lab document, stored as an AI-generated summary.
type LabResult struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date              time.Time `json:"date"`
	LabResultsSummary *string   `gorm:"column:lab_results_summary" json:"lab_results_summary"`
}

func (LabResult) TableName() string { return "lab_results" }

func (r *LabResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Date.IsZero() {
		r.Date = time.Now().UTC()
	}
	return nil
}
