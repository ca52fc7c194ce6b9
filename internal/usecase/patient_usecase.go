package usecase

import (
	"context"
	"fmt"

	"hospital-food-manager/internal/converter"
	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
	"hospital-food-manager/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	List(ctx context.Context) ([]dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int, req dto.PartialUpdateRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int) error
}

var patientFields = map[string]updatableField{
	"name":             {column: "name", decode: decodeString},
	"age":              {column: "age", decode: decodeAge},
	"gender":           {column: "gender", decode: decodeString},
	"roomNumber":       {column: "room_number", decode: decodeString},
	"bedNumber":        {column: "bed_number", decode: decodeString},
	"floorNumber":      {column: "floor_number", decode: decodeString},
	"contactInfo":      {column: "contact_info", decode: decodeString},
	"emergencyContact": {column: "emergency_contact", decode: decodeString},
	"allergies":        {column: "allergies", decode: decodeString},
	"diseases":         {column: "diseases", decode: decodeString},
}

type patientUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	patientRepo   repository.PatientRepository
	dietChartRepo repository.DietChartRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	dietChartRepo repository.DietChartRepository,
) PatientUsecase {
	return &patientUsecase{
		db:            db,
		log:           log,
		patientRepo:   patientRepo,
		dietChartRepo: dietChartRepo,
	}
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.WithError(err).Error("Error fetching patients")
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

// Create expects a request that already passed field validation.
func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	age, err := req.Age.Int()
	if err != nil {
		return nil, ErrInvalidAge
	}

	patient := &entity.Patient{
		Name:             req.Name,
		Age:              age,
		Gender:           req.Gender,
		RoomNumber:       req.RoomNumber,
		BedNumber:        req.BedNumber,
		FloorNumber:      req.FloorNumber,
		ContactInfo:      req.ContactInfo,
		EmergencyContact: req.EmergencyContact,
		Allergies:        req.Allergies,
		Diseases:         req.Diseases,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.WithError(err).Error("Error creating patient")
		return nil, err
	}

	u.log.WithField("patient_id", patient.ID).Info("Patient created")
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int, req dto.PartialUpdateRequest) (*dto.PatientResponse, error) {
	log := u.log.WithField("patient_id", id)

	columns, err := toColumns(req, patientFields)
	if err != nil {
		log.WithError(err).Error("Error updating patient")
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		log.WithError(err).Error("Error updating patient")
		return nil, err
	}
	if patient == nil {
		log.Error("Error updating patient: not found")
		return nil, ErrPatientNotFound
	}

	if len(columns) > 0 {
		affected, err := u.patientRepo.UpdateColumns(ctx, u.db, id, columns)
		if err != nil {
			log.WithError(err).Error("Error updating patient")
			return nil, err
		}
		if affected == 0 {
			// Removed between the lookup and the update.
			log.Error("Error updating patient: not found")
			return nil, ErrPatientNotFound
		}

		patient, err = u.patientRepo.FindByID(ctx, u.db, id)
		if err != nil {
			log.WithError(err).Error("Error updating patient")
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
	}

	return converter.PatientToResponse(patient), nil
}

// Delete removes the patient's diet charts and then the patient. The two
// statements are independent: when the second one fails the charts stay
// deleted and ErrPartialCascade is returned.
func (u *patientUsecase) Delete(ctx context.Context, id int) error {
	log := u.log.WithField("patient_id", id)

	removed, err := u.dietChartRepo.DeleteByPatientID(ctx, u.db, id)
	if err != nil {
		log.WithError(err).Error("Error deleting patient diet charts")
		return err
	}

	affected, err := u.patientRepo.Delete(ctx, u.db, id)
	if err == nil && affected == 0 {
		err = ErrPatientNotFound
	}
	if err != nil {
		if removed > 0 {
			log.WithError(err).WithField("diet_charts_removed", removed).
				Warn("Diet charts removed but patient was not deleted")
			return fmt.Errorf("%w: %w", ErrPartialCascade, err)
		}
		log.WithError(err).Error("Error deleting patient")
		return err
	}

	log.WithField("diet_charts_removed", removed).Info("Patient deleted")
	return nil
}
