package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"hospital-food-manager/config"
	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
	domainRepo "hospital-food-manager/internal/domain/repository"
	"hospital-food-manager/internal/infrastructure/database"
	"hospital-food-manager/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DBConfig{
		Driver:      config.DriverSQLite,
		SQLitePath:  ":memory:",
		AutoMigrate: true,
		LogLevel:    "silent",
	}, newTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func intPtr(i int) *int { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

// failingPatientRepository delegates to the real repository but fails every delete.
type failingPatientRepository struct {
	domainRepo.PatientRepository
	err error
}

func (r *failingPatientRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	return 0, r.err
}

func seedPatient(t *testing.T, db *gorm.DB) int {
	t.Helper()

	patient := &entity.Patient{
		Name: "Anita", Age: 55, Gender: "Female", RoomNumber: "12", BedNumber: "1",
		FloorNumber: "1", ContactInfo: "555-0100", EmergencyContact: "555-0101",
		Allergies: "None", Diseases: "Hypertension",
	}
	require.NoError(t, db.Create(patient).Error)
	return patient.ID
}

func seedDietChart(t *testing.T, db *gorm.DB, patientID int) {
	t.Helper()
	require.NoError(t, db.Create(&entity.DietChart{PatientID: intPtr(patientID), MealType: strPtr("Lunch")}).Error)
}

func TestPatientUsecase_DeleteCascade(t *testing.T) {
	db := newTestDB(t)
	u := NewPatientUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewDietChartRepository())

	id := seedPatient(t, db)
	seedDietChart(t, db, id)
	seedDietChart(t, db, id)
	seedDietChart(t, db, id+100)

	require.NoError(t, u.Delete(context.Background(), id))

	var remaining []entity.DietChart
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, id+100, *remaining[0].PatientID)

	var patients int64
	require.NoError(t, db.Model(&entity.Patient{}).Count(&patients).Error)
	assert.Zero(t, patients)
}

func TestPatientUsecase_DeletePartialFailureKeepsChartsRemoved(t *testing.T) {
	db := newTestDB(t)
	dbErr := errors.New("connection reset")
	u := NewPatientUsecase(
		db,
		newTestLogger(),
		&failingPatientRepository{PatientRepository: repository.NewPatientRepository(), err: dbErr},
		repository.NewDietChartRepository(),
	)

	id := seedPatient(t, db)
	seedDietChart(t, db, id)

	err := u.Delete(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialCascade)
	assert.ErrorIs(t, err, dbErr)

	var charts, patients int64
	require.NoError(t, db.Model(&entity.DietChart{}).Count(&charts).Error)
	require.NoError(t, db.Model(&entity.Patient{}).Count(&patients).Error)
	assert.Zero(t, charts)
	assert.Equal(t, int64(1), patients)
}

func TestPatientUsecase_DeleteUnknownWithoutCharts(t *testing.T) {
	db := newTestDB(t)
	u := NewPatientUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewDietChartRepository())

	err := u.Delete(context.Background(), 77)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.NotErrorIs(t, err, ErrPartialCascade)
}

func TestPatientUsecase_Create(t *testing.T) {
	db := newTestDB(t)
	u := NewPatientUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewDietChartRepository())

	resp, err := u.Create(context.Background(), &dto.CreatePatientRequest{
		Name: "Joseph", Age: "81", Gender: "Male", RoomNumber: "7", BedNumber: "2",
		FloorNumber: "3", ContactInfo: "555-0199", EmergencyContact: "555-0198",
		Allergies: "Lactose", Diseases: "COPD",
	})
	require.NoError(t, err)
	assert.Equal(t, 81, resp.Age)
	assert.NotZero(t, resp.ID)

	_, err = u.Create(context.Background(), &dto.CreatePatientRequest{Name: "X", Age: "99999999999999999999999"})
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestPatientUsecase_UpdateEmptyBodyReturnsRecord(t *testing.T) {
	db := newTestDB(t)
	u := NewPatientUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewDietChartRepository())
	id := seedPatient(t, db)

	resp, err := u.Update(context.Background(), id, dto.PartialUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Anita", resp.Name)

	_, err = u.Update(context.Background(), id+1, dto.PartialUpdateRequest{})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientUsecase_UpdateRejectsNullForRequiredColumn(t *testing.T) {
	db := newTestDB(t)
	u := NewPatientUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewDietChartRepository())
	id := seedPatient(t, db)

	_, err := u.Update(context.Background(), id, dto.PartialUpdateRequest{"name": []byte(`null`)})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "name", fieldErr.Field)
}

func TestDietChartUsecase_UpdateClearsNullableField(t *testing.T) {
	db := newTestDB(t)
	u := NewDietChartUsecase(db, newTestLogger(), repository.NewDietChartRepository())

	created, err := u.Create(context.Background(), &dto.CreateDietChartRequest{
		PatientID:    intPtr(1),
		MealType:     strPtr("Dinner"),
		Instructions: strPtr("Soft food"),
		Ingredients:  []byte(`"khichdi"`),
	})
	require.NoError(t, err)

	updated, err := u.Update(context.Background(), created.ID, dto.PartialUpdateRequest{
		"instructions": []byte(`null`),
		"ingredients":  []byte(`null`),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Instructions)
	assert.Nil(t, updated.Ingredients)
	require.NotNil(t, updated.MealType)
	assert.Equal(t, "Dinner", *updated.MealType)
}

func TestDietChartUsecase_DeleteUnknown(t *testing.T) {
	db := newTestDB(t)
	u := NewDietChartUsecase(db, newTestLogger(), repository.NewDietChartRepository())

	assert.ErrorIs(t, u.Delete(context.Background(), 5), ErrDietChartNotFound)
}

func TestTaskUsecase_UpdateWithoutCompletedIsNoop(t *testing.T) {
	db := newTestDB(t)
	u := NewTaskUsecase(db, newTestLogger(), repository.NewTaskRepository())

	created, err := u.Create(context.Background(), &dto.CreateTaskRequest{Description: "Wash trays", Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, created.Completed)
	assert.Nil(t, created.StaffID)

	updated, err := u.Update(context.Background(), created.ID, &dto.UpdateTaskRequest{})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	_, err = u.Update(context.Background(), created.ID+1, &dto.UpdateTaskRequest{Completed: boolPtr(false)})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestStaffAndDeliveryUsecases(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	staffUsecase := NewStaffUsecase(db, log, repository.NewStaffRepository())
	deliveryUsecase := NewDeliveryUsecase(db, log, repository.NewDeliveryRepository())

	staff, err := staffUsecase.Create(context.Background(), &dto.CreateStaffRequest{Name: "Kiran", Role: "Delivery"})
	require.NoError(t, err)
	assert.Equal(t, "Kiran", staff.Name)

	list, err := staffUsecase.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	delivery, err := deliveryUsecase.Create(context.Background(), &dto.CreateDeliveryRequest{
		MealBoxDetails: []byte(`{"boxes":2}`),
		DeliveryStatus: "delivered",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"boxes":2}`, string(delivery.MealBoxDetails))

	deliveries, err := deliveryUsecase.List(context.Background())
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.JSONEq(t, `{"boxes":2}`, string(deliveries[0].MealBoxDetails))
}
