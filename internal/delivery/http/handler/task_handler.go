package handler

import (
	"net/http"

	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/usecase"
	"hospital-food-manager/pkg/response"

	"github.com/sirupsen/logrus"
)

type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
	log         *logrus.Logger
}

func NewTaskHandler(taskUsecase usecase.TaskUsecase, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
		log:         log,
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskUsecase.List(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, "Error fetching tasks.")
		return
	}

	response.OK(w, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeCreateBody(w, r, &req, h.log, "task") {
		return
	}

	task, err := h.taskUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.OK(w, task)
}

// Update handles PUT /tasks/{id}; only "completed" is read from the body.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.log.WithError(err).Error("Error updating task: invalid id")
		response.InternalServerError(w, "Failed to update task")
		return
	}

	var req dto.UpdateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.WithError(err).Error("Error updating task: invalid body")
		response.InternalServerError(w, "Failed to update task")
		return
	}

	task, err := h.taskUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update task")
		return
	}

	response.OK(w, task)
}
