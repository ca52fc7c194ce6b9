package dto

import "encoding/json"

// Request DTOs

type CreateDeliveryRequest struct {
	MealBoxDetails json.RawMessage `json:"mealBoxDetails"`
	DeliveryStatus string          `json:"deliveryStatus"`
}

// Response DTOs

type DeliveryResponse struct {
	ID             int             `json:"id"`
	MealBoxDetails json.RawMessage `json:"mealBoxDetails"`
	DeliveryStatus string          `json:"deliveryStatus"`
}
