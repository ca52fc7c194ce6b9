package handler

import (
	"net/http"

	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/usecase"
	"hospital-food-manager/pkg/response"

	"github.com/sirupsen/logrus"
)

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	log          *logrus.Logger
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, log *logrus.Logger) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		log:          log,
	}
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffUsecase.List(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, "Error fetching staff.")
		return
	}

	response.OK(w, staff)
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStaffRequest
	if !decodeCreateBody(w, r, &req, h.log, "staff") {
		return
	}

	staff, err := h.staffUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.OK(w, staff)
}
