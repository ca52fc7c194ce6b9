package repository

import (
	"context"

	"hospital-food-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type DietChartRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.DietChart, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DietChart, error)
	Create(ctx context.Context, db *gorm.DB, chart *entity.DietChart) error
	UpdateColumns(ctx context.Context, db *gorm.DB, id int, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int) (int64, error)
}
