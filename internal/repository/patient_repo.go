package repository

import (
	"errors"
	"fmt"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create inserts a new patient
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// FindByID finds a patient by id
func (r *PatientRepository) FindByID(id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &patient, nil
}

// ExistsByHN reports whether any patient already uses the hospital number
func (r *PatientRepository) ExistsByHN(hn string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("hn = ?", hn).Count(&count).Error
	return count > 0, err
}

// ExistsByCID reports whether any patient already uses the citizen ID
func (r *PatientRepository) ExistsByCID(cid string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("cid = ?", cid).Count(&count).Error
	return count > 0, err
}

// ExistsByHNExcept reports whether a patient other than excludeID uses hn
func (r *PatientRepository) ExistsByHNExcept(hn, excludeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("hn = ? AND id != ?", hn, excludeID).Count(&count).Error
	return count > 0, err
}

// Update saves all fields of an existing patient
func (r *PatientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete removes a patient by id
func (r *PatientRepository) Delete(id string) error {
	return r.db.Delete(&models.Patient{}, "id = ?", id).Error
}

// ListAll returns every patient
func (r *PatientRepository) ListAll() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("hn asc").Find(&patients).Error
	return patients, err
}

// ListByZone returns the patients of one health-center zone
func (r *PatientRepository) ListByZone(zone string) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Where("hc_zone = ?", zone).Order("hn asc").Find(&patients).Error
	return patients, err
}
