package controllers

import (
	"time"

	"github.com/westeen/Medala-v3/models"
	"github.com/westeen/Medala-v3/services"

	"github.com/gin-gonic/gin"
)

// Row projections for the three list endpoints: string ids, ISO-8601
// timestamps, nullable payload fields.
type NutritionLogRow struct {
	ID          string   `json:"id"`
	Datetime    string   `json:"datetime"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Fats        *float64 `json:"fats"`
	Carbs       *float64 `json:"carbs"`
	Description *string  `json:"description"`
}

type LabResultRow struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	LabResultsSummary *string `json:"lab_results_summary"`
}

type TextRecordRow struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	AISummary *string `json:"ai_summary"`
}

type RecordsController struct {
	records *services.RecordService
}

func NewRecordsController(records *services.RecordService) *RecordsController {
	return &RecordsController{records: records}
}

func (ctl *RecordsController) GetNutritionLogs(c *gin.Context) {
	logs, err := ctl.records.ListNutritionLogs()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	rows := make([]NutritionLogRow, 0, len(logs))
	for _, entry := range logs {
		rows = append(rows, NutritionLogRow{
			ID:          entry.ID.String(),
			Datetime:    entry.Datetime.UTC().Format(time.RFC3339),
			Calories:    entry.Calories,
			Protein:     entry.Protein,
			Fats:        entry.Fats,
			Carbs:       entry.Carbs,
			Description: entry.Description,
		})
	}
	c.JSON(200, rows)
}

func (ctl *RecordsController) GetLabResults(c *gin.Context) {
	results, err := ctl.records.ListLabResults()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, labResultRows(results))
}

func (ctl *RecordsController) GetTextRecords(c *gin.Context) {
	records, err := ctl.records.ListTextRecords()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	rows := make([]TextRecordRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, TextRecordRow{
			ID:        record.ID.String(),
			Date:      record.Date.UTC().Format(time.RFC3339),
			AISummary: record.AISummary,
		})
	}
	c.JSON(200, rows)
}

func labResultRows(results []models.LabResult) []LabResultRow {
	rows := make([]LabResultRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, LabResultRow{
			ID:                result.ID.String(),
			Date:              result.Date.UTC().Format(time.RFC3339),
			LabResultsSummary: result.LabResultsSummary,
		})
	}
	return rows
}
