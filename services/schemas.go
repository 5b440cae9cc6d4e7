package services

import "google.golang.org/genai"

// Extraction types are the internal contract with Gemini: the structured
// output each prompt requests. Controllers map them to their own response
// shapes rather than serializing these directly.

type CalorieExtraction struct {
	Calories      int    `json:"calories"`
	Protein       int    `json:"protein"`
	Fat           int    `json:"fat"`
	Carbohydrates int    `json:"carbohydrates"`
	Description   string `json:"description"`
}

type SummaryExtraction struct {
	Summary string `json:"summary"`
}

type HealthIndexExtraction struct {
	HealthIndex float64 `json:"health_index"`
}

type FoodIndexExtraction struct {
	FoodIndex float64 `json:"food_index"`
}

var calorieSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"calories":      {Type: genai.TypeInteger},
		"protein":       {Type: genai.TypeInteger},
		"fat":           {Type: genai.TypeInteger},
		"carbohydrates": {Type: genai.TypeInteger},
		"description":   {Type: genai.TypeString},
	},
	Required: []string{"calories", "protein", "fat", "carbohydrates", "description"},
}

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString},
	},
	Required: []string{"summary"},
}

var healthIndexSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"health_index": {Type: genai.TypeNumber},
	},
	Required: []string{"health_index"},
}

var foodIndexSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"food_index": {Type: genai.TypeNumber},
	},
	Required: []string{"food_index"},
}
