package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One row per successfully logged meal, with the AI-extracted macros.
// Macro fields stay nil when extraction produced nothing for them;
// aggregation treats nil as zero.
type NutritionLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Datetime    time.Time `json:"datetime"`
	Calories    *float64  `json:"calories"`
	Protein     *float64  `json:"protein"` // grams
	Fats        *float64  `json:"fats"`    // grams
	Carbs       *float64  `json:"carbs"`   // grams
	Description *string   `json:"description"`
}

func (NutritionLog) TableName() string { return "nutrition_logs" }

func (n *NutritionLog) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Datetime.IsZero() {
		n.Datetime = time.Now().UTC()
	}
	return nil
}
