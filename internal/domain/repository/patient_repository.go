package repository

import (
	"context"

	"hospital-food-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Patient, error)
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	// UpdateColumns applies a column -> value set to one row and reports the
	// number of rows touched.
	UpdateColumns(ctx context.Context, db *gorm.DB, id int, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
