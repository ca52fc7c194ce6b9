package repository

import (
	"context"

	"hospital-food-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type StaffRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Staff, error)
	Create(ctx context.Context, db *gorm.DB, staff *entity.Staff) error
}
