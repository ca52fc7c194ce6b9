package converter

import (
	"encoding/json"

	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
)

// DietChartToResponse converts a DietChart entity to DietChartResponse DTO
func DietChartToResponse(chart *entity.DietChart) *dto.DietChartResponse {
	if chart == nil {
		return nil
	}

	return &dto.DietChartResponse{
		ID:           chart.ID,
		PatientID:    chart.PatientID,
		MealType:     chart.MealType,
		Instructions: chart.Instructions,
		Ingredients:  rawJSONToMessage(chart.Ingredients),
	}
}

func DietChartsToResponses(charts []entity.DietChart) []dto.DietChartResponse {
	responses := make([]dto.DietChartResponse, len(charts))
	for i := range charts {
		responses[i] = *DietChartToResponse(&charts[i])
	}
	return responses
}

// rawJSONToMessage returns nil for SQL NULL so the field encodes as null.
func rawJSONToMessage(j entity.RawJSON) json.RawMessage {
	if j.IsNull() {
		return nil
	}
	return json.RawMessage(j)
}
