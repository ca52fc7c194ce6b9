package dto

// Request DTOs

type CreateStaffRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	ContactInfo string `json:"contactInfo"`
}

// Response DTOs

type StaffResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	ContactInfo string `json:"contactInfo"`
}
