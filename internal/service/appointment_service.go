package service

import (
	"fmt"
	"time"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/policy"
)

// dateLayout is the only accepted calendar-date form for appointment dates.
const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperr.ErrInvalidInput)
	}
	return d, nil
}

// AppointmentService owns the follow-up-visit lifecycle:
// pending -> completed | referred_back. A completed appointment is frozen
// against update and delete; a referred_back one is not. That asymmetry is
// deliberate: a referred case may still be rescheduled by the hospital.
type AppointmentService struct {
	appointments AppointmentRepository
	patients     PatientRepository
}

func NewAppointmentService(appointments AppointmentRepository, patients PatientRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients}
}

// CreateAppointmentInput carries the fields for scheduling a follow-up.
type CreateAppointmentInput struct {
	PatientID string `json:"patientId" binding:"required"`
	Date      string `json:"appointmentDate" binding:"required"` // YYYY-MM-DD
	Note      string `json:"note"`
	ReqBP     bool   `json:"reqBp"`
	ReqBS     bool   `json:"reqBs"`
}

// Create schedules a follow-up visit for a patient, starting out pending.
func (s *AppointmentService) Create(caller policy.Caller, input CreateAppointmentInput) (*models.Appointment, error) {
	if err := policy.Authorize(caller, policy.ActionCreateAppointment, policy.AnyZone); err != nil {
		return nil, err
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.patients.FindByID(input.PatientID); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		PatientID: input.PatientID,
		Date:      date,
		Note:      input.Note,
		Status:    models.StatusPending,
		ReqBP:     input.ReqBP,
		ReqBS:     input.ReqBS,
	}

	if err := s.appointments.Create(appt); err != nil {
		return nil, err
	}
	return s.appointments.FindByID(appt.ID)
}

// UpdateAppointmentInput carries the mutable appointment fields. Only the
// date and the note may change after scheduling.
type UpdateAppointmentInput struct {
	Date *string `json:"appointmentDate"` // YYYY-MM-DD
	Note *string `json:"note"`
}

// Update reschedules or annotates an appointment. A completed appointment
// is frozen.
func (s *AppointmentService) Update(caller policy.Caller, id string, input UpdateAppointmentInput) (*models.Appointment, error) {
	if err := policy.Authorize(caller, policy.ActionUpdateAppointment, policy.AnyZone); err != nil {
		return nil, err
	}

	appt, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, err
	}

	if appt.Status == models.StatusCompleted {
		return nil, fmt.Errorf("%w: cannot edit a completed appointment", apperr.ErrInvalidOperation)
	}

	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		appt.Date = date
	}
	if input.Note != nil {
		appt.Note = *input.Note
	}

	if err := s.appointments.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Delete removes an appointment. Completed visits must not be silently
// erased, so those are rejected.
func (s *AppointmentService) Delete(caller policy.Caller, id string) error {
	if err := policy.Authorize(caller, policy.ActionDeleteAppointment, policy.AnyZone); err != nil {
		return err
	}

	appt, err := s.appointments.FindByID(id)
	if err != nil {
		return err
	}

	if appt.Status == models.StatusCompleted {
		return fmt.Errorf("%w: cannot delete a completed appointment", apperr.ErrInvalidOperation)
	}

	return s.appointments.Delete(id)
}

// VisitReadings carries the measurements taken at the health center.
type VisitReadings struct {
	BPSys      *int `json:"bpSys"`
	BPDia      *int `json:"bpDia"`
	BPSys2     *int `json:"bpSys2"`
	BPDia2     *int `json:"bpDia2"`
	BloodSugar *int `json:"bloodSugar"`
}

// RecordVisit stores the readings and marks the appointment completed. An
// hc caller may only record visits for patients of their own zone.
func (s *AppointmentService) RecordVisit(caller policy.Caller, id string, readings VisitReadings) (*models.Appointment, error) {
	appt, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(caller, policy.ActionRecordVisit, appt.Patient.HCZone); err != nil {
		return nil, err
	}

	appt.BPSys = readings.BPSys
	appt.BPDia = readings.BPDia
	appt.BPSys2 = readings.BPSys2
	appt.BPDia2 = readings.BPDia2
	appt.BloodSugar = readings.BloodSugar
	appt.Status = models.StatusCompleted

	if err := s.appointments.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// ReferBack returns the case to the hospital with a note. Same zone rule
// as RecordVisit for hc callers.
func (s *AppointmentService) ReferBack(caller policy.Caller, id string, note string) (*models.Appointment, error) {
	appt, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(caller, policy.ActionReferBack, appt.Patient.HCZone); err != nil {
		return nil, err
	}

	appt.ReferBackNote = note
	appt.Status = models.StatusReferredBack

	if err := s.appointments.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// List returns appointments within an optional inclusive date range. An
// hc caller only sees appointments of patients in their own zone.
func (s *AppointmentService) List(caller policy.Caller, startDate, endDate string) ([]models.Appointment, error) {
	if err := policy.Authorize(caller, policy.ActionViewAppointments, policy.AnyZone); err != nil {
		return nil, err
	}

	var filter AppointmentFilter
	if startDate != "" {
		d, err := parseDate(startDate)
		if err != nil {
			return nil, err
		}
		filter.StartDate = &d
	}
	if endDate != "" {
		d, err := parseDate(endDate)
		if err != nil {
			return nil, err
		}
		filter.EndDate = &d
	}
	if policy.ZoneScoped(caller) {
		filter.PatientZone = caller.Zone
	}

	return s.appointments.List(filter)
}
