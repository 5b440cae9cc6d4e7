package services

import (
	"context"
	"fmt"

	"github.com/westeen/Medala-v3/models"
)

// LogService handles the four logging endpoints: run one extraction against
// Gemini, persist the structured result, return the extraction to the
// caller. Extraction failure propagates and nothing is persisted.
type LogService struct {
	records   *RecordService
	extractor Extractor
}

func NewLogService(records *RecordService, extractor Extractor) *LogService {
	return &LogService{records: records, extractor: extractor}
}

func (s *LogService) LogMeal(ctx context.Context, text string, files []Attachment) (*CalorieExtraction, error) {
	var extracted CalorieExtraction
	if err := s.extractor.Extract(ctx, fmt.Sprintf(mealPrompt, text), files, calorieSchema, &extracted); err != nil {
		return nil, err
	}

	calories := float64(extracted.Calories)
	protein := float64(extracted.Protein)
	fats := float64(extracted.Fat)
	carbs := float64(extracted.Carbohydrates)
	entry := &models.NutritionLog{
		Calories:    &calories,
		Protein:     &protein,
		Fats:        &fats,
		Carbs:       &carbs,
		Description: &extracted.Description,
	}
	if err := s.records.CreateNutritionLog(entry); err != nil {
		return nil, err
	}
	return &extracted, nil
}

func (s *LogService) LogDocs(ctx context.Context, files []Attachment) (*SummaryExtraction, error) {
	var extracted SummaryExtraction
	if err := s.extractor.Extract(ctx, docsPrompt, files, summarySchema, &extracted); err != nil {
		return nil, err
	}

	result := &models.LabResult{LabResultsSummary: &extracted.Summary}
	if err := s.records.CreateLabResult(result); err != nil {
		return nil, err
	}
	return &extracted, nil
}

func (s *LogService) LogGeneralText(ctx context.Context, text string) (*SummaryExtraction, error) {
	var extracted SummaryExtraction
	if err := s.extractor.Extract(ctx, fmt.Sprintf(generalTextPrompt, text), nil, summarySchema, &extracted); err != nil {
		return nil, err
	}

	record := &models.TextRecord{AISummary: &extracted.Summary}
	if err := s.records.CreateTextRecord(record); err != nil {
		return nil, err
	}
	return &extracted, nil
}

func (s *LogService) LogGeneralVoice(ctx context.Context, files []Attachment) (*SummaryExtraction, error) {
	var extracted SummaryExtraction
	if err := s.extractor.Extract(ctx, generalVoicePrompt, files, summarySchema, &extracted); err != nil {
		return nil, err
	}

	record := &models.TextRecord{AISummary: &extracted.Summary}
	if err := s.records.CreateTextRecord(record); err != nil {
		return nil, err
	}
	return &extracted, nil
}
