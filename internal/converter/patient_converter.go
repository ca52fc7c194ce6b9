package converter

import (
	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		Name:             patient.Name,
		Age:              patient.Age,
		Gender:           patient.Gender,
		RoomNumber:       patient.RoomNumber,
		BedNumber:        patient.BedNumber,
		FloorNumber:      patient.FloorNumber,
		ContactInfo:      patient.ContactInfo,
		EmergencyContact: patient.EmergencyContact,
		Allergies:        patient.Allergies,
		Diseases:         patient.Diseases,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
