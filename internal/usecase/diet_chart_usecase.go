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

type DietChartUsecase interface {
	List(ctx context.Context) ([]dto.DietChartResponse, error)
	Create(ctx context.Context, req *dto.CreateDietChartRequest) (*dto.DietChartResponse, error)
	Update(ctx context.Context, id int, req dto.PartialUpdateRequest) (*dto.DietChartResponse, error)
	Delete(ctx context.Context, id int) error
}

var dietChartFields = map[string]updatableField{
	"patientId":    {column: "patient_id", decode: decodeNullableInt},
	"mealType":     {column: "meal_type", decode: decodeNullableString},
	"instructions": {column: "instructions", decode: decodeNullableString},
	"ingredients":  {column: "ingredients", decode: decodeJSON},
}

type dietChartUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	dietChartRepo repository.DietChartRepository
}

func NewDietChartUsecase(db *gorm.DB, log *logrus.Logger, dietChartRepo repository.DietChartRepository) DietChartUsecase {
	return &dietChartUsecase{
		db:            db,
		log:           log,
		dietChartRepo: dietChartRepo,
	}
}

func (u *dietChartUsecase) List(ctx context.Context) ([]dto.DietChartResponse, error) {
	charts, err := u.dietChartRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.WithError(err).Error("Error fetching diet charts")
		return nil, err
	}
	return converter.DietChartsToResponses(charts), nil
}

// Create stores whatever was sent. patientId is not checked against the
// patients table.
func (u *dietChartUsecase) Create(ctx context.Context, req *dto.CreateDietChartRequest) (*dto.DietChartResponse, error) {
	chart := &entity.DietChart{
		PatientID:    req.PatientID,
		MealType:     req.MealType,
		Instructions: req.Instructions,
		Ingredients:  entity.RawJSON(req.Ingredients),
	}

	if err := u.dietChartRepo.Create(ctx, u.db, chart); err != nil {
		u.log.WithError(err).Error("Error creating diet chart")
		return nil, err
	}

	return converter.DietChartToResponse(chart), nil
}

func (u *dietChartUsecase) Update(ctx context.Context, id int, req dto.PartialUpdateRequest) (*dto.DietChartResponse, error) {
	log := u.log.WithField("diet_chart_id", id)

	columns, err := toColumns(req, dietChartFields)
	if err != nil {
		log.WithError(err).Error("Error updating diet chart")
		return nil, err
	}

	chart, err := u.dietChartRepo.FindByID(ctx, u.db, id)
	if err != nil {
		log.WithError(err).Error("Error updating diet chart")
		return nil, err
	}
	if chart == nil {
		log.Error("Error updating diet chart: not found")
		return nil, ErrDietChartNotFound
	}

	if len(columns) > 0 {
		if _, err := u.dietChartRepo.UpdateColumns(ctx, u.db, id, columns); err != nil {
			log.WithError(err).Error("Error updating diet chart")
			return nil, err
		}

		chart, err = u.dietChartRepo.FindByID(ctx, u.db, id)
		if err != nil {
			log.WithError(err).Error("Error updating diet chart")
			return nil, err
		}
		if chart == nil {
			return nil, ErrDietChartNotFound
		}
	}

	return converter.DietChartToResponse(chart), nil
}

func (u *dietChartUsecase) Delete(ctx context.Context, id int) error {
	log := u.log.WithField("diet_chart_id", id)

	affected, err := u.dietChartRepo.Delete(ctx, u.db, id)
	if err != nil {
		log.WithError(err).Error("Error deleting diet chart")
		return err
	}
	if affected == 0 {
		log.Error("Error deleting diet chart: not found")
		return ErrDietChartNotFound
	}

	return nil
}
