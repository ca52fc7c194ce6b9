package handler

import (
	"net/http"

	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/usecase"
	"hospital-food-manager/pkg/response"

	"github.com/sirupsen/logrus"
)

type DeliveryHandler struct {
	deliveryUsecase usecase.DeliveryUsecase
	log             *logrus.Logger
}

func NewDeliveryHandler(deliveryUsecase usecase.DeliveryUsecase, log *logrus.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUsecase: deliveryUsecase,
		log:             log,
	}
}

func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.deliveryUsecase.List(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, "Error fetching deliveries.")
		return
	}

	response.OK(w, deliveries)
}

func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeliveryRequest
	if !decodeCreateBody(w, r, &req, h.log, "delivery") {
		return
	}

	delivery, err := h.deliveryUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.OK(w, delivery)
}
