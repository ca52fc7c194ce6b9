package dto

// Request DTOs

// CreatePatientRequest requires every field. Age arrives as a number or a
// numeric string and is stored as an integer; a numeric 0 counts as missing.
type CreatePatientRequest struct {
	Name             string    `json:"name" validate:"required"`
	Age              IntString `json:"age" validate:"required,number"`
	Gender           string    `json:"gender" validate:"required"`
	RoomNumber       string    `json:"roomNumber" validate:"required"`
	BedNumber        string    `json:"bedNumber" validate:"required"`
	FloorNumber      string    `json:"floorNumber" validate:"required"`
	ContactInfo      string    `json:"contactInfo" validate:"required"`
	EmergencyContact string    `json:"emergencyContact" validate:"required"`
	Allergies        string    `json:"allergies" validate:"required"`
	Diseases         string    `json:"diseases" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	RoomNumber       string `json:"roomNumber"`
	BedNumber        string `json:"bedNumber"`
	FloorNumber      string `json:"floorNumber"`
	ContactInfo      string `json:"contactInfo"`
	EmergencyContact string `json:"emergencyContact"`
	Allergies        string `json:"allergies"`
	Diseases         string `json:"diseases"`
}
