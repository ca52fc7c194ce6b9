package repository

import (
	"context"

	"hospital-food-manager/internal/domain/entity"
	domainRepo "hospital-food-manager/internal/domain/repository"

	"gorm.io/gorm"
)

type staffRepository struct{}

func NewStaffRepository() domainRepo.StaffRepository {
	return &staffRepository{}
}

func (r *staffRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := db.WithContext(ctx).Order("id").Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) Create(ctx context.Context, db *gorm.DB, staff *entity.Staff) error {
	return db.WithContext(ctx).Create(staff).Error
}
