package services

import (
	"time"

	"github.com/westeen/Medala-v3/models"

	"gorm.io/gorm"
)

// RecordService is the persistence gateway for the three append-only record
// kinds. Inserts run in their own transaction so a failed write leaves no
// partial row; records are never updated or deleted.
type RecordService struct{ db *gorm.DB }

func NewRecordService(db *gorm.DB) *RecordService { return &RecordService{db: db} }

func (s *RecordService) CreateNutritionLog(entry *models.NutritionLog) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

func (s *RecordService) CreateLabResult(result *models.LabResult) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(result).Error
	})
}

func (s *RecordService) CreateTextRecord(record *models.TextRecord) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
}

func (s *RecordService) ListNutritionLogs() ([]models.NutritionLog, error) {
	var logs []models.NutritionLog
	err := s.db.Find(&logs).Error
	return logs, err
}

func (s *RecordService) ListLabResults() ([]models.LabResult, error) {
	var results []models.LabResult
	err := s.db.Find(&results).Error
	return results, err
}

func (s *RecordService) ListTextRecords() ([]models.TextRecord, error) {
	var records []models.TextRecord
	err := s.db.Find(&records).Error
	return records, err
}

// NutritionLogsBetween returns logs with from <= datetime < to.
func (s *RecordService) NutritionLogsBetween(from, to time.Time) ([]models.NutritionLog, error) {
	var logs []models.NutritionLog
	err := s.db.
		Where("datetime >= ? AND datetime < ?", from, to).
		Find(&logs).Error
	return logs, err
}

// NutritionLogsSince returns logs with datetime >= cutoff, newest first.
// The cutoff itself is included.
func (s *RecordService) NutritionLogsSince(cutoff time.Time) ([]models.NutritionLog, error) {
	var logs []models.NutritionLog
	err := s.db.
		Where("datetime >= ?", cutoff).
		Order("datetime DESC").
		Find(&logs).Error
	return logs, err
}

// RecentLabResults returns the newest limit rows regardless of age.
func (s *RecordService) RecentLabResults(limit int) ([]models.LabResult, error) {
	var results []models.LabResult
	err := s.db.
		Order("date DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// RecentTextRecords returns the newest limit rows regardless of age.
func (s *RecordService) RecentTextRecords(limit int) ([]models.TextRecord, error) {
	var records []models.TextRecord
	err := s.db.
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
