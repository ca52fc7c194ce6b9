package dto

// Request DTOs

type CreateTaskRequest struct {
	Description string `json:"description"`
	StaffID     *int   `json:"staffId"`
	Completed   *bool  `json:"completed"`
}

// UpdateTaskRequest only carries the completion flag; any other key in the
// body is ignored.
type UpdateTaskRequest struct {
	Completed *bool `json:"completed"`
}

// Response DTOs

type TaskResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	StaffID     *int   `json:"staffId"`
	Completed   bool   `json:"completed"`
}
