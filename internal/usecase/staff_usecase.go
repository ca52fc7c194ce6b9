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

// StaffUsecase is read and create only.
type StaffUsecase interface {
	List(ctx context.Context) ([]dto.StaffResponse, error)
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
}

type staffUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	staffRepo repository.StaffRepository
}

func NewStaffUsecase(db *gorm.DB, log *logrus.Logger, staffRepo repository.StaffRepository) StaffUsecase {
	return &staffUsecase{
		db:        db,
		log:       log,
		staffRepo: staffRepo,
	}
}

func (u *staffUsecase) List(ctx context.Context) ([]dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.WithError(err).Error("Error fetching staff")
		return nil, err
	}
	return converter.StaffListToResponses(staff), nil
}

func (u *staffUsecase) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	staff := &entity.Staff{
		Name:        req.Name,
		Role:        req.Role,
		ContactInfo: req.ContactInfo,
	}

	if err := u.staffRepo.Create(ctx, u.db, staff); err != nil {
		u.log.WithError(err).Error("Error creating staff")
		return nil, err
	}

	return converter.StaffToResponse(staff), nil
}
