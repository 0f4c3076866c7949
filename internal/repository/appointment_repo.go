package repository

import (
	"errors"
	"fmt"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/service"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create inserts a new appointment
func (r *AppointmentRepository) Create(appt *models.Appointment) error {
	return r.db.Create(appt).Error
}

// FindByID finds an appointment by id with its patient preloaded
func (r *AppointmentRepository) FindByID(id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.Preload("Patient").First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: appointment %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &appt, nil
}

// Update saves all fields of an existing appointment
func (r *AppointmentRepository) Update(appt *models.Appointment) error {
	return r.db.Save(appt).Error
}

// Delete removes an appointment by id
func (r *AppointmentRepository) Delete(id string) error {
	return r.db.Delete(&models.Appointment{}, "id = ?", id).Error
}

// List returns appointments matching the filter, patients preloaded,
// ordered by appointment date.
func (r *AppointmentRepository) List(filter service.AppointmentFilter) ([]models.Appointment, error) {
	query := r.db.Preload("Patient").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Order("appointments.date asc")

	if filter.StartDate != nil {
		query = query.Where("appointments.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("appointments.date <= ?", *filter.EndDate)
	}
	if filter.PatientZone != "" {
		query = query.Where("patients.hc_zone = ?", filter.PatientZone)
	}

	var appts []models.Appointment
	err := query.Find(&appts).Error
	return appts, err
}
