package handlers

import (
	"ncd-clinic-server/internal/middleware"
	"ncd-clinic-server/internal/service"
	"ncd-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment lifecycle requests.
type AppointmentHandler struct {
	Appointments *service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments}
}

// CreateAppointment handles scheduling a new follow-up visit.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req service.CreateAppointmentInput
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, err := h.Appointments.Create(caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, "Appointment created successfully", appt)
}

// GetAppointments handles listing appointments, optionally bounded by
// ?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD (inclusive).
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appts, err := h.Appointments.List(caller, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Appointments fetched successfully", appts)
}

// UpdateAppointment handles rescheduling or annotating an appointment.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req service.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	appt, err := h.Appointments.Update(caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Appointment updated successfully", appt)
}

// DeleteAppointment handles removing an appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.Appointments.Delete(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}

// RecordVisit handles storing the visit readings and completing the
// appointment.
func (h *AppointmentHandler) RecordVisit(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req service.VisitReadings
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	appt, err := h.Appointments.RecordVisit(caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Visit recorded successfully", appt)
}

// ReferBackRequest represents the request body for referring a case back.
type ReferBackRequest struct {
	Note string `json:"note" binding:"required"`
}

// ReferBack handles returning a case to the hospital.
func (h *AppointmentHandler) ReferBack(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req ReferBackRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, err := h.Appointments.ReferBack(caller, c.Param("id"), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Appointment referred back successfully", appt)
}
