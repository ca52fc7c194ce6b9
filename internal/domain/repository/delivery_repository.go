package repository

import (
	"context"

	"hospital-food-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type DeliveryRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Delivery, error)
	Create(ctx context.Context, db *gorm.DB, delivery *entity.Delivery) error
}
