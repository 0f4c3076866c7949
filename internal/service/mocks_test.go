package service

import (
	"fmt"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"

	"github.com/google/uuid"
)

// -- Mock repositories, map-backed --

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, id)
	}
	return u, nil
}

func (m *mockUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, username)
}

func (m *mockUserRepo) ExistsByUsername(username string) (bool, error) {
	_, err := m.FindByUsername(username)
	return err == nil, nil
}

func (m *mockUserRepo) Update(user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return fmt.Errorf("%w: user %s", apperr.ErrNotFound, user.ID)
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ListAll() ([]models.User, error) {
	var users []models.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

type mockPatientRepo struct {
	patients map[string]*models.Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[string]*models.Patient)}
}

func (m *mockPatientRepo) Create(patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	// Mirror the storage-level unique constraints
	for _, p := range m.patients {
		if p.HN == patient.HN || p.CID == patient.CID {
			return fmt.Errorf("%w: duplicate key", apperr.ErrConflict)
		}
	}
	m.patients[patient.ID] = patient
	return nil
}

func (m *mockPatientRepo) FindByID(id string) (*models.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("%w: patient %s", apperr.ErrNotFound, id)
	}
	return p, nil
}

func (m *mockPatientRepo) ExistsByHN(hn string) (bool, error) {
	for _, p := range m.patients {
		if p.HN == hn {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPatientRepo) ExistsByCID(cid string) (bool, error) {
	for _, p := range m.patients {
		if p.CID == cid {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPatientRepo) ExistsByHNExcept(hn, excludeID string) (bool, error) {
	for _, p := range m.patients {
		if p.HN == hn && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPatientRepo) Update(patient *models.Patient) error {
	if _, ok := m.patients[patient.ID]; !ok {
		return fmt.Errorf("%w: patient %s", apperr.ErrNotFound, patient.ID)
	}
	m.patients[patient.ID] = patient
	return nil
}

func (m *mockPatientRepo) Delete(id string) error {
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) ListAll() ([]models.Patient, error) {
	var patients []models.Patient
	for _, p := range m.patients {
		patients = append(patients, *p)
	}
	return patients, nil
}

func (m *mockPatientRepo) ListByZone(zone string) ([]models.Patient, error) {
	var patients []models.Patient
	for _, p := range m.patients {
		if p.HCZone == zone {
			patients = append(patients, *p)
		}
	}
	return patients, nil
}

type mockAppointmentRepo struct {
	appointments map[string]*models.Appointment
	patients     *mockPatientRepo
}

func newMockAppointmentRepo(patients *mockPatientRepo) *mockAppointmentRepo {
	return &mockAppointmentRepo{
		appointments: make(map[string]*models.Appointment),
		patients:     patients,
	}
}

func (m *mockAppointmentRepo) Create(appt *models.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	m.appointments[appt.ID] = appt
	return nil
}

func (m *mockAppointmentRepo) FindByID(id string) (*models.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment %s", apperr.ErrNotFound, id)
	}
	// Emulate the Patient preload
	if p, ok := m.patients.patients[a.PatientID]; ok {
		a.Patient = *p
	}
	return a, nil
}

func (m *mockAppointmentRepo) Update(appt *models.Appointment) error {
	if _, ok := m.appointments[appt.ID]; !ok {
		return fmt.Errorf("%w: appointment %s", apperr.ErrNotFound, appt.ID)
	}
	m.appointments[appt.ID] = appt
	return nil
}

func (m *mockAppointmentRepo) Delete(id string) error {
	delete(m.appointments, id)
	return nil
}

func (m *mockAppointmentRepo) List(filter AppointmentFilter) ([]models.Appointment, error) {
	var appts []models.Appointment
	for _, a := range m.appointments {
		if filter.StartDate != nil && a.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && a.Date.After(*filter.EndDate) {
			continue
		}
		if filter.PatientZone != "" {
			p, ok := m.patients.patients[a.PatientID]
			if !ok || p.HCZone != filter.PatientZone {
				continue
			}
		}
		appts = append(appts, *a)
	}
	return appts, nil
}

type mockHomeVisitRepo struct {
	visits   map[string]*models.HomeVisit
	patients *mockPatientRepo
}

func newMockHomeVisitRepo(patients *mockPatientRepo) *mockHomeVisitRepo {
	return &mockHomeVisitRepo{
		visits:   make(map[string]*models.HomeVisit),
		patients: patients,
	}
}

func (m *mockHomeVisitRepo) Create(visit *models.HomeVisit) error {
	if visit.ID == "" {
		visit.ID = uuid.New().String()
	}
	m.visits[visit.ID] = visit
	return nil
}

func (m *mockHomeVisitRepo) ListAll() ([]models.HomeVisit, error) {
	var visits []models.HomeVisit
	for _, v := range m.visits {
		visits = append(visits, *v)
	}
	return visits, nil
}

func (m *mockHomeVisitRepo) ListForZone(zone string) ([]models.HomeVisit, error) {
	var visits []models.HomeVisit
	for _, v := range m.visits {
		if v.CreatorZone == zone {
			visits = append(visits, *v)
			continue
		}
		if v.PatientID != nil {
			if p, ok := m.patients.patients[*v.PatientID]; ok && p.HCZone == zone {
				visits = append(visits, *v)
			}
		}
	}
	return visits, nil
}
