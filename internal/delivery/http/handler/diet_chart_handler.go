package handler

import (
	"net/http"

	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/usecase"
	"hospital-food-manager/pkg/response"

	"github.com/sirupsen/logrus"
)

type DietChartHandler struct {
	dietChartUsecase usecase.DietChartUsecase
	log              *logrus.Logger
}

func NewDietChartHandler(dietChartUsecase usecase.DietChartUsecase, log *logrus.Logger) *DietChartHandler {
	return &DietChartHandler{
		dietChartUsecase: dietChartUsecase,
		log:              log,
	}
}

func (h *DietChartHandler) List(w http.ResponseWriter, r *http.Request) {
	charts, err := h.dietChartUsecase.List(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, "Error fetching diet charts.")
		return
	}

	response.OK(w, charts)
}

// Create performs no field validation; missing fields are stored as null.
func (h *DietChartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDietChartRequest
	if !decodeCreateBody(w, r, &req, h.log, "diet chart") {
		return
	}

	chart, err := h.dietChartUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.OK(w, chart)
}

func (h *DietChartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.log.WithError(err).Error("Error updating diet chart: invalid id")
		response.InternalServerError(w, "Failed to update diet chart")
		return
	}

	var req dto.PartialUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.WithError(err).Error("Error updating diet chart: invalid body")
		response.InternalServerError(w, "Failed to update diet chart")
		return
	}

	chart, err := h.dietChartUsecase.Update(r.Context(), id, req)
	if err != nil {
		response.InternalServerError(w, "Failed to update diet chart")
		return
	}

	response.OK(w, chart)
}

func (h *DietChartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.log.WithError(err).Error("Error deleting diet chart: invalid id")
		response.InternalServerError(w, "Failed to delete diet chart")
		return
	}

	if err := h.dietChartUsecase.Delete(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to delete diet chart")
		return
	}

	response.Message(w, "Diet chart deleted successfully")
}
