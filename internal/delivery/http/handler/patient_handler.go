package handler

import (
	"errors"
	"net/http"

	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/usecase"
	"hospital-food-manager/pkg/response"
	"hospital-food-manager/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		log:            log,
	}
}

// List handles GET /patients
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.List(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, "Error fetching patients.")
		return
	}

	response.OK(w, patients)
}

// Create handles POST /patients. Every field is mandatory; age is coerced
// to an integer.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeCreateBody(w, r, &req, h.log, "patient") {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		details := h.validator.FormatValidationErrors(err)
		h.log.WithField("fields", details).Warn("Patient validation failed")
		if h.validator.FailedOn(err, "required") {
			response.ValidationError(w, "All fields are required", details)
			return
		}
		response.ValidationError(w, "Age must be a whole number", details)
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAge) {
			response.ValidationError(w, "Age must be a whole number", nil)
			return
		}
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.OK(w, patient)
}

// Update handles PUT /patients/{id} with any subset of patient fields.
// Every failure, including a malformed or unknown id, is a 500.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.log.WithError(err).Error("Error updating patient: invalid id")
		response.InternalServerError(w, "Failed to update patient")
		return
	}

	var req dto.PartialUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.WithError(err).Error("Error updating patient: invalid body")
		response.InternalServerError(w, "Failed to update patient")
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, req)
	if err != nil {
		response.InternalServerError(w, "Failed to update patient")
		return
	}

	response.OK(w, patient)
}

// Delete handles DELETE /patients/{id}, removing the patient's diet charts first.
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.log.WithError(err).Error("Error deleting patient: invalid id")
		response.InternalServerError(w, "Failed to delete patient")
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to delete patient")
		return
	}

	response.Message(w, "Patient deleted successfully")
}
