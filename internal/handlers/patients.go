package handlers

import (
	"ncd-clinic-server/internal/middleware"
	"ncd-clinic-server/internal/service"
	"ncd-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler handles patient registry requests.
type PatientHandler struct {
	Patients *service.PatientService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients *service.PatientService) *PatientHandler {
	return &PatientHandler{Patients: patients}
}

// CreatePatient handles registering a new patient.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req service.PatientInput
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.Patients.Create(caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, "Patient created successfully", patient)
}

// GetPatients handles listing patients visible to the caller.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	patients, err := h.Patients.List(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// UpdatePatient handles updating a patient record.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req service.PatientInput
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.Patients.Update(caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient handles removing a patient record.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.Patients.Delete(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Patient deleted successfully", nil)
}
