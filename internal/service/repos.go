package service

import (
	"time"

	"ncd-clinic-server/internal/models"
)

// UserRepository defines the persistence interface for staff accounts.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	Update(user *models.User) error
	Delete(id string) error
	ListAll() ([]models.User, error)
}

// PatientRepository defines the persistence interface for patients.
type PatientRepository interface {
	Create(patient *models.Patient) error
	FindByID(id string) (*models.Patient, error)
	ExistsByHN(hn string) (bool, error)
	ExistsByCID(cid string) (bool, error)
	// ExistsByHNExcept reports whether any patient other than excludeID
	// already uses hn.
	ExistsByHNExcept(hn, excludeID string) (bool, error)
	Update(patient *models.Patient) error
	Delete(id string) error
	ListAll() ([]models.Patient, error)
	ListByZone(zone string) ([]models.Patient, error)
}

// AppointmentFilter narrows appointment listings. Zero values mean
// "no restriction"; the date bounds are inclusive.
type AppointmentFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	PatientZone string
}

// AppointmentRepository defines the persistence interface for appointments.
// FindByID loads the owning patient alongside the appointment.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	FindByID(id string) (*models.Appointment, error)
	Update(appt *models.Appointment) error
	Delete(id string) error
	List(filter AppointmentFilter) ([]models.Appointment, error)
}

// HomeVisitRepository defines the persistence interface for home visits.
type HomeVisitRepository interface {
	Create(visit *models.HomeVisit) error
	ListAll() ([]models.HomeVisit, error)
	// ListForZone returns entries whose creator zone matches zone OR whose
	// linked patient belongs to zone.
	ListForZone(zone string) ([]models.HomeVisit, error)
}
