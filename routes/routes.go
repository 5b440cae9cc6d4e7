package routes

import (
	"time"

	"github.com/westeen/Medala-v3/config"
	"github.com/westeen/Medala-v3/controllers"
	"github.com/westeen/Medala-v3/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB, extractor services.Extractor, logger *zap.Logger) *gin.Engine {
	r := gin.Default()

	// Explicit origin allow-list; credentials stay enabled, so no wildcard.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))

	records := services.NewRecordService(db)
	logs := services.NewLogService(records, extractor)
	analytics := services.NewAnalyticsService(records, extractor, logger)

	logCtl := controllers.NewLogEntryController(logs)
	recordsCtl := controllers.NewRecordsController(records)
	analyticsCtl := controllers.NewAnalyticsController(analytics)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Medala backend is running"})
	})

	r.POST("/log_entry_meals", logCtl.LogMeals)
	r.POST("/log_entry_docs", logCtl.LogDocs)
	r.POST("/log_entry_general_text", logCtl.LogGeneralText)
	r.POST("/log_entry_general_voice", logCtl.LogGeneralVoice)

	r.GET("/nutrition_logs", recordsCtl.GetNutritionLogs)
	r.GET("/lab_results", recordsCtl.GetLabResults)
	r.GET("/text_records", recordsCtl.GetTextRecords)

	r.GET("/ai_insights", analyticsCtl.AIInsights)
	r.GET("/daily_calorie", analyticsCtl.DailyCalorie)
	r.GET("/health_index", analyticsCtl.HealthIndex)
	r.GET("/food_index", analyticsCtl.FoodIndex)

	return r
}
