package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/westeen/Medala-v3/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// fakeExtractor stands in for Gemini: it counts calls, optionally fails, and
// otherwise fills out via the provided function.
type fakeExtractor struct {
	calls int
	err   error
	fill  func(out any)
}

func (f *fakeExtractor) Extract(ctx context.Context, prompt string, attachments []Attachment, schema *genai.Schema, out any) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if f.fill != nil {
		f.fill(out)
	}
	return nil
}

func newAnalytics(t *testing.T, extractor Extractor) (*AnalyticsService, *RecordService) {
	records := NewRecordService(setupTestDB(t))
	return NewAnalyticsService(records, extractor, zap.NewNop()), records
}

func TestDailyTotalsSumsAndTreatsNilAsZero(t *testing.T) {
	svc, records := newAnalytics(t, &fakeExtractor{})

	require.NoError(t, records.CreateNutritionLog(&models.NutritionLog{
		Calories: floatPtr(500), Protein: floatPtr(20), Carbs: floatPtr(60),
	}))
	require.NoError(t, records.CreateNutritionLog(&models.NutritionLog{
		Calories: floatPtr(300), Fats: floatPtr(10), Carbs: floatPtr(40),
	}))

	totals, err := svc.DailyTotals()
	require.NoError(t, err)
	assert.Equal(t, 800.0, totals.Calories)
	assert.Equal(t, 20.0, totals.Protein)
	assert.Equal(t, 10.0, totals.Fat)
	assert.Equal(t, 100.0, totals.Carbohydrates)
}

func TestDailyTotalsIgnoresOtherDays(t *testing.T) {
	svc, records := newAnalytics(t, &fakeExtractor{})

	require.NoError(t, records.CreateNutritionLog(&models.NutritionLog{
		Datetime: time.Now().UTC().Add(-48 * time.Hour),
		Calories: floatPtr(900),
	}))

	totals, err := svc.DailyTotals()
	require.NoError(t, err)
	assert.Equal(t, 0.0, totals.Calories)
}

func TestFoodIndexNoRecentLogsSkipsModel(t *testing.T) {
	extractor := &fakeExtractor{}
	svc, _ := newAnalytics(t, extractor)

	index, err := svc.FoodIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5.0, index)
	assert.Zero(t, extractor.calls)
}

func TestFoodIndexFallsBackOnModelFailure(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("quota exceeded")}
	svc, records := newAnalytics(t, extractor)

	require.NoError(t, records.CreateNutritionLog(&models.NutritionLog{Calories: floatPtr(400)}))

	index, err := svc.FoodIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5.0, index)
	assert.Equal(t, 1, extractor.calls)
}

func TestFoodIndexReturnsModelScore(t *testing.T) {
	extractor := &fakeExtractor{fill: func(out any) {
		out.(*FoodIndexExtraction).FoodIndex = 7.2
	}}
	svc, records := newAnalytics(t, extractor)

	require.NoError(t, records.CreateNutritionLog(&models.NutritionLog{Calories: floatPtr(400)}))

	index, err := svc.FoodIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7.2, index)
}

func TestHealthIndexFallsBackOnModelFailure(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("service unavailable")}
	svc, records := newAnalytics(t, extractor)

	require.NoError(t, records.CreateNutritionLog(&models.NutritionLog{Calories: floatPtr(400)}))

	assert.Equal(t, 5.0, svc.HealthIndex(context.Background()))
	assert.Equal(t, 1, extractor.calls)
}

func TestHealthIndexReturnsModelScore(t *testing.T) {
	extractor := &fakeExtractor{fill: func(out any) {
		out.(*HealthIndexExtraction).HealthIndex = 8.1
	}}
	svc, _ := newAnalytics(t, extractor)

	assert.Equal(t, 8.1, svc.HealthIndex(context.Background()))
}

func TestInsightsOnboardingWithNoData(t *testing.T) {
	extractor := &fakeExtractor{}
	svc, _ := newAnalytics(t, extractor)

	summary, err := svc.Insights(context.Background())
	require.NoError(t, err)
	assert.Contains(t, summary, "Start logging your meals")
	assert.Zero(t, extractor.calls)
}

func TestInsightsFallbackReportsCounts(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("timeout")}
	svc, records := newAnalytics(t, extractor)

	require.NoError(t, records.CreateNutritionLog(&models.NutritionLog{Calories: floatPtr(1)}))
	require.NoError(t, records.CreateNutritionLog(&models.NutritionLog{Calories: floatPtr(2)}))
	require.NoError(t, records.CreateLabResult(&models.LabResult{}))
	require.NoError(t, records.CreateTextRecord(&models.TextRecord{}))
	require.NoError(t, records.CreateTextRecord(&models.TextRecord{}))
	require.NoError(t, records.CreateTextRecord(&models.TextRecord{}))

	summary, err := svc.Insights(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		"You have logged 2 meals, 1 lab results, and 3 health notes. Continue logging your data for personalized insights.",
		summary)
}

func TestInsightsReturnsModelSummary(t *testing.T) {
	extractor := &fakeExtractor{fill: func(out any) {
		out.(*SummaryExtraction).Summary = "You are doing great."
	}}
	svc, records := newAnalytics(t, extractor)

	require.NoError(t, records.CreateTextRecord(&models.TextRecord{}))

	summary, err := svc.Insights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "You are doing great.", summary)
}

func TestRecentSnapshotExcludesOldNutritionLogs(t *testing.T) {
	svc, records := newAnalytics(t, &fakeExtractor{})

	recent := &models.NutritionLog{Calories: floatPtr(250), Description: strPtr("oatmeal")}
	old := &models.NutritionLog{
		Datetime:    time.Now().UTC().Add(-8 * 24 * time.Hour),
		Description: strPtr("ancient pizza"),
	}
	require.NoError(t, records.CreateNutritionLog(recent))
	require.NoError(t, records.CreateNutritionLog(old))

	snapshot, err := svc.recentSnapshot()
	require.NoError(t, err)
	assert.Contains(t, snapshot, "oatmeal")
	assert.NotContains(t, snapshot, "ancient pizza")
}
