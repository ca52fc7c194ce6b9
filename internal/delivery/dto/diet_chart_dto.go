package dto

import "encoding/json"

// Request DTOs

// CreateDietChartRequest has no required fields; absent values are stored as NULL.
type CreateDietChartRequest struct {
	PatientID    *int            `json:"patientId"`
	MealType     *string         `json:"mealType"`
	Instructions *string         `json:"instructions"`
	Ingredients  json.RawMessage `json:"ingredients"`
}

// Response DTOs

type DietChartResponse struct {
	ID           int             `json:"id"`
	PatientID    *int            `json:"patientId"`
	MealType     *string         `json:"mealType"`
	Instructions *string         `json:"instructions"`
	Ingredients  json.RawMessage `json:"ingredients"`
}
