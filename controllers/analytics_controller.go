package controllers

import (
	"github.com/westeen/Medala-v3/services"

	"github.com/gin-gonic/gin"
)

type DailyTotalsResponse struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

type HealthIndexResponse struct {
	HealthIndex float64 `json:"health_index"`
}

type FoodIndexResponse struct {
	FoodIndex float64 `json:"food_index"`
}

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

func (ctl *AnalyticsController) DailyCalorie(c *gin.Context) {
	totals, err := ctl.analytics.DailyTotals()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, DailyTotalsResponse{
		Calories:      totals.Calories,
		Protein:       totals.Protein,
		Fat:           totals.Fat,
		Carbohydrates: totals.Carbohydrates,
	})
}

func (ctl *AnalyticsController) HealthIndex(c *gin.Context) {
	c.JSON(200, HealthIndexResponse{
		HealthIndex: ctl.analytics.HealthIndex(c.Request.Context()),
	})
}

func (ctl *AnalyticsController) FoodIndex(c *gin.Context) {
	index, err := ctl.analytics.FoodIndex(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, FoodIndexResponse{FoodIndex: index})
}

func (ctl *AnalyticsController) AIInsights(c *gin.Context) {
	summary, err := ctl.analytics.Insights(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, SummaryResponse{Summary: summary})
}
