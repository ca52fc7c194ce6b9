package converter

import (
	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
)

func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:          staff.ID,
		Name:        staff.Name,
		Role:        staff.Role,
		ContactInfo: staff.ContactInfo,
	}
}

func StaffListToResponses(staff []entity.Staff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(staff))
	for i := range staff {
		responses[i] = *StaffToResponse(&staff[i])
	}
	return responses
}
