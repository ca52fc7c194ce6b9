package usecase

import (
	"context"

	"hospital-food-manager/internal/converter"
	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
	"hospital-food-manager/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DeliveryUsecase interface {
	List(ctx context.Context) ([]dto.DeliveryResponse, error)
	Create(ctx context.Context, req *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error)
}

type deliveryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	deliveryRepo repository.DeliveryRepository
}

func NewDeliveryUsecase(db *gorm.DB, log *logrus.Logger, deliveryRepo repository.DeliveryRepository) DeliveryUsecase {
	return &deliveryUsecase{
		db:           db,
		log:          log,
		deliveryRepo: deliveryRepo,
	}
}

func (u *deliveryUsecase) List(ctx context.Context) ([]dto.DeliveryResponse, error) {
	deliveries, err := u.deliveryRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.WithError(err).Error("Error fetching deliveries")
		return nil, err
	}
	return converter.DeliveriesToResponses(deliveries), nil
}

func (u *deliveryUsecase) Create(ctx context.Context, req *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	delivery := &entity.Delivery{
		MealBoxDetails: entity.RawJSON(req.MealBoxDetails),
		DeliveryStatus: req.DeliveryStatus,
	}

	if err := u.deliveryRepo.Create(ctx, u.db, delivery); err != nil {
		u.log.WithError(err).Error("Error creating delivery")
		return nil, err
	}

	return converter.DeliveryToResponse(delivery), nil
}
