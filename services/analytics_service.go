package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/westeen/Medala-v3/models"

	"go.uber.org/zap"
)

const (
	// Returned by the index endpoints whenever the model cannot be asked or
	// does not answer.
	indexFallback = 5.0

	// Rolling window for the recent-data snapshot. The cutoff is inclusive:
	// a log exactly this old is still part of the window.
	recentWindow = 7 * 24 * time.Hour

	// How many of the newest text records and lab results feed the snapshot.
	recentLimit = 7

	onboardingMessage = "Start logging your meals, health notes, and lab results to receive personalized health insights. Your AI assistant will analyze your data and provide recommendations every hour."
)

// AnalyticsService derives aggregate values from stored records, re-querying
// Gemini for the scored ones. AI failures never escape the index methods;
// each degrades to its documented fallback.
type AnalyticsService struct {
	records   *RecordService
	extractor Extractor
	logger    *zap.Logger
}

func NewAnalyticsService(records *RecordService, extractor Extractor, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{records: records, extractor: extractor, logger: logger}
}

type DailyTotals struct {
	Calories      float64
	Protein       float64
	Fat           float64
	Carbohydrates float64
}

// DailyTotals sums the macros of every nutrition log from the current UTC
// day. Nil macro fields count as zero.
func (s *AnalyticsService) DailyTotals() (DailyTotals, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	logs, err := s.records.NutritionLogsBetween(start, start.Add(24*time.Hour))
	if err != nil {
		return DailyTotals{}, err
	}

	var totals DailyTotals
	for _, entry := range logs {
		if entry.Calories != nil {
			totals.Calories += *entry.Calories
		}
		if entry.Protein != nil {
			totals.Protein += *entry.Protein
		}
		if entry.Fats != nil {
			totals.Fat += *entry.Fats
		}
		if entry.Carbs != nil {
			totals.Carbohydrates += *entry.Carbs
		}
	}
	return totals, nil
}

// HealthIndex scores the recent snapshot with Gemini. Every failure path,
// storage included, degrades to the fallback value.
func (s *AnalyticsService) HealthIndex(ctx context.Context) float64 {
	snapshot, err := s.recentSnapshot()
	if err != nil {
		s.logger.Warn("health index degraded to fallback", zap.Error(err))
		return indexFallback
	}

	var extracted HealthIndexExtraction
	if err := s.extractor.Extract(ctx, fmt.Sprintf(healthIndexPrompt, snapshot), nil, healthIndexSchema, &extracted); err != nil {
		s.logger.Warn("health index degraded to fallback", zap.Error(err))
		return indexFallback
	}
	return extracted.HealthIndex
}

// FoodIndex scores the last 7 days of nutrition logs. With no logs in the
// window the fallback is returned without calling the model at all. Storage
// errors propagate; extraction errors degrade to the fallback.
func (s *AnalyticsService) FoodIndex(ctx context.Context) (float64, error) {
	logs, err := s.records.NutritionLogsSince(time.Now().UTC().Add(-recentWindow))
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return indexFallback, nil
	}

	payload, err := json.Marshal(nutritionRows(logs))
	if err != nil {
		return 0, err
	}

	var extracted FoodIndexExtraction
	if err := s.extractor.Extract(ctx, fmt.Sprintf(foodIndexPrompt, payload), nil, foodIndexSchema, &extracted); err != nil {
		s.logger.Warn("food index degraded to fallback", zap.Error(err))
		return indexFallback, nil
	}
	return extracted.FoodIndex, nil
}

// Insights feeds everything ever stored to Gemini for a one-paragraph
// summary. With no data at all the caller gets the onboarding message; when
// extraction fails the user still gets a count of what they have logged.
func (s *AnalyticsService) Insights(ctx context.Context) (string, error) {
	logs, err := s.records.ListNutritionLogs()
	if err != nil {
		return "", err
	}
	labs, err := s.records.ListLabResults()
	if err != nil {
		return "", err
	}
	texts, err := s.records.ListTextRecords()
	if err != nil {
		return "", err
	}

	if len(logs) == 0 && len(labs) == 0 && len(texts) == 0 {
		return onboardingMessage, nil
	}

	payload, err := json.Marshal(map[string]any{
		"nutrition_logs": nutritionRows(logs),
		"lab_results":    labRows(labs),
		"text_records":   textRows(texts),
	})
	if err != nil {
		return "", err
	}

	var extracted SummaryExtraction
	if err := s.extractor.Extract(ctx, fmt.Sprintf(insightsPrompt, payload), nil, summarySchema, &extracted); err != nil {
		s.logger.Warn("ai insights degraded to logged-data summary", zap.Error(err))
		return fmt.Sprintf(
			"You have logged %d meals, %d lab results, and %d health notes. Continue logging your data for personalized insights.",
			len(logs), len(labs), len(texts)), nil
	}
	return extracted.Summary, nil
}

// recentSnapshot serializes the recent slice of all three tables: nutrition
// logs from the rolling 7-day window plus the newest 7 text records and lab
// results regardless of age. Input for the model only, never served.
func (s *AnalyticsService) recentSnapshot() (string, error) {
	logs, err := s.records.NutritionLogsSince(time.Now().UTC().Add(-recentWindow))
	if err != nil {
		return "", err
	}
	texts, err := s.records.RecentTextRecords(recentLimit)
	if err != nil {
		return "", err
	}
	labs, err := s.records.RecentLabResults(recentLimit)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]any{
		"nutrition_logs": nutritionRows(logs),
		"text_records":   textRows(texts),
		"lab_results":    labRows(labs),
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

type nutritionRow struct {
	ID          string   `json:"id"`
	Datetime    string   `json:"datetime"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Fats        *float64 `json:"fats"`
	Carbs       *float64 `json:"carbs"`
	Description *string  `json:"description"`
}

type summaryRow struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Summary *string `json:"summary"`
}

func nutritionRows(logs []models.NutritionLog) []nutritionRow {
	rows := make([]nutritionRow, 0, len(logs))
	for _, entry := range logs {
		rows = append(rows, nutritionRow{
			ID:          entry.ID.String(),
			Datetime:    entry.Datetime.UTC().Format(time.RFC3339),
			Calories:    entry.Calories,
			Protein:     entry.Protein,
			Fats:        entry.Fats,
			Carbs:       entry.Carbs,
			Description: entry.Description,
		})
	}
	return rows
}

func labRows(results []models.LabResult) []summaryRow {
	rows := make([]summaryRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, summaryRow{
			ID:      result.ID.String(),
			Date:    result.Date.UTC().Format(time.RFC3339),
			Summary: result.LabResultsSummary,
		})
	}
	return rows
}

func textRows(records []models.TextRecord) []summaryRow {
	rows := make([]summaryRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, summaryRow{
			ID:      record.ID.String(),
			Date:    record.Date.UTC().Format(time.RFC3339),
			Summary: record.AISummary,
		})
	}
	return rows
}
