package repository

import (
	"context"

	"hospital-food-manager/internal/domain/entity"
	domainRepo "hospital-food-manager/internal/domain/repository"

	"gorm.io/gorm"
)

type deliveryRepository struct{}

func NewDeliveryRepository() domainRepo.DeliveryRepository {
	return &deliveryRepository{}
}

func (r *deliveryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	err := db.WithContext(ctx).Order("id").Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *deliveryRepository) Create(ctx context.Context, db *gorm.DB, delivery *entity.Delivery) error {
	return db.WithContext(ctx).Create(delivery).Error
}
