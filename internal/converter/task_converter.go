package converter

import (
	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
)

// TaskToResponse converts a Task entity to TaskResponse DTO
func TaskToResponse(task *entity.Task) *dto.TaskResponse {
	if task == nil {
		return nil
	}

	return &dto.TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		StaffID:     task.StaffID,
		Completed:   task.Completed,
	}
}

// TasksToResponses converts a slice of Task entities to slice of TaskResponse DTOs
func TasksToResponses(tasks []entity.Task) []dto.TaskResponse {
	responses := make([]dto.TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *TaskToResponse(&tasks[i])
	}
	return responses
}
