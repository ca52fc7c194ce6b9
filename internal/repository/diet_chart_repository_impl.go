package repository

import (
	"context"
	"errors"

	"hospital-food-manager/internal/domain/entity"
	domainRepo "hospital-food-manager/internal/domain/repository"

	"gorm.io/gorm"
)

type dietChartRepository struct{}

func NewDietChartRepository() domainRepo.DietChartRepository {
	return &dietChartRepository{}
}

func (r *dietChartRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.DietChart, error) {
	var charts []entity.DietChart
	err := db.WithContext(ctx).Order("id").Find(&charts).Error
	if err != nil {
		return nil, err
	}
	return charts, nil
}

func (r *dietChartRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DietChart, error) {
	var chart entity.DietChart
	err := db.WithContext(ctx).Where("id = ?", id).First(&chart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chart, nil
}

func (r *dietChartRepository) Create(ctx context.Context, db *gorm.DB, chart *entity.DietChart) error {
	return db.WithContext(ctx).Create(chart).Error
}

func (r *dietChartRepository) UpdateColumns(ctx context.Context, db *gorm.DB, id int, columns map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.DietChart{}).Where("id = ?", id).Updates(columns)
	return result.RowsAffected, result.Error
}

func (r *dietChartRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DietChart{})
	return result.RowsAffected, result.Error
}

func (r *dietChartRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int) (int64, error) {
	result := db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.DietChart{})
	return result.RowsAffected, result.Error
}
