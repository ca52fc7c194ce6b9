package converter

import (
	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
)

func DeliveryToResponse(delivery *entity.Delivery) *dto.DeliveryResponse {
	if delivery == nil {
		return nil
	}

	return &dto.DeliveryResponse{
		ID:             delivery.ID,
		MealBoxDetails: rawJSONToMessage(delivery.MealBoxDetails),
		DeliveryStatus: delivery.DeliveryStatus,
	}
}

func DeliveriesToResponses(deliveries []entity.Delivery) []dto.DeliveryResponse {
	responses := make([]dto.DeliveryResponse, len(deliveries))
	for i := range deliveries {
		responses[i] = *DeliveryToResponse(&deliveries[i])
	}
	return responses
}
