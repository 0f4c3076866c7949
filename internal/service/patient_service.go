package service

import (
	"fmt"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/policy"
)

// PatientService owns patient records: identity uniqueness and zone
// assignment rules.
type PatientService struct {
	patients PatientRepository
}

func NewPatientService(patients PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

// PatientInput carries the caller-supplied patient fields for create/update.
type PatientInput struct {
	HN            string `json:"hn" binding:"required"`
	Name          string `json:"name" binding:"required"`
	CID           string `json:"cid" binding:"required"`
	Phone         string `json:"phone"`
	MedicalRights string `json:"medicalRights"`
	Clinic        string `json:"clinic"`
	HouseNo       string `json:"houseNo"`
	Moo           string `json:"moo"`
	Tumbol        string `json:"tumbol"`
	Amphoe        string `json:"amphoe"`
	Province      string `json:"province"`
	Color         string `json:"color"`
	HCZone        string `json:"hcZone"`
}

// Create registers a new patient. HN and CID are each checked for
// uniqueness independently; the error names which key collided. A caller
// of role hc always gets the patient assigned to their own zone, whatever
// zone the request carried: the record's zone is data consistency, not
// caller intent.
func (s *PatientService) Create(caller policy.Caller, input PatientInput) (*models.Patient, error) {
	if err := policy.Authorize(caller, policy.ActionCreatePatient, policy.AnyZone); err != nil {
		return nil, err
	}

	zone := input.HCZone
	if caller.Role == models.RoleHC {
		zone = caller.Zone
	}

	if exists, err := s.patients.ExistsByHN(input.HN); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: HN already exists", apperr.ErrConflict)
	}

	if exists, err := s.patients.ExistsByCID(input.CID); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: CID already exists", apperr.ErrConflict)
	}

	patient := &models.Patient{
		HN:            input.HN,
		Name:          input.Name,
		CID:           input.CID,
		Phone:         input.Phone,
		MedicalRights: input.MedicalRights,
		Clinic:        input.Clinic,
		HouseNo:       input.HouseNo,
		Moo:           input.Moo,
		Tumbol:        input.Tumbol,
		Amphoe:        input.Amphoe,
		Province:      input.Province,
		Color:         input.Color,
		HCZone:        zone,
	}

	if err := s.patients.Create(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Update overwrites a patient record. If the HN changes it is re-validated
// against every other patient; all other fields overwrite unconditionally.
func (s *PatientService) Update(caller policy.Caller, id string, input PatientInput) (*models.Patient, error) {
	if err := policy.Authorize(caller, policy.ActionUpdatePatient, policy.AnyZone); err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.HN != patient.HN {
		exists, err := s.patients.ExistsByHNExcept(input.HN, patient.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: HN already exists", apperr.ErrConflict)
		}
	}

	patient.HN = input.HN
	patient.Name = input.Name
	patient.CID = input.CID
	patient.Phone = input.Phone
	patient.MedicalRights = input.MedicalRights
	patient.Clinic = input.Clinic
	patient.HouseNo = input.HouseNo
	patient.Moo = input.Moo
	patient.Tumbol = input.Tumbol
	patient.Amphoe = input.Amphoe
	patient.Province = input.Province
	patient.Color = input.Color
	patient.HCZone = input.HCZone

	if err := s.patients.Update(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Delete removes a patient record.
func (s *PatientService) Delete(caller policy.Caller, id string) error {
	if err := policy.Authorize(caller, policy.ActionDeletePatient, policy.AnyZone); err != nil {
		return err
	}

	if _, err := s.patients.FindByID(id); err != nil {
		return err
	}
	return s.patients.Delete(id)
}

// List returns the patients visible to the caller: everything for hospital
// and admin, only the caller's own zone for hc.
func (s *PatientService) List(caller policy.Caller) ([]models.Patient, error) {
	if err := policy.Authorize(caller, policy.ActionViewPatients, policy.AnyZone); err != nil {
		return nil, err
	}

	if policy.ZoneScoped(caller) {
		return s.patients.ListByZone(caller.Zone)
	}
	return s.patients.ListAll()
}
