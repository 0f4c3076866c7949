package repository

import (
	"ncd-clinic-server/internal/models"

	"gorm.io/gorm"
)

type HomeVisitRepository struct {
	db *gorm.DB
}

func NewHomeVisitRepo(db *gorm.DB) *HomeVisitRepository {
	return &HomeVisitRepository{db: db}
}

// Create inserts a new home-visit entry
func (r *HomeVisitRepository) Create(visit *models.HomeVisit) error {
	return r.db.Create(visit).Error
}

// ListAll returns every home-visit entry
func (r *HomeVisitRepository) ListAll() ([]models.HomeVisit, error) {
	var visits []models.HomeVisit
	err := r.db.Preload("Patient").Order("visit_date desc").Find(&visits).Error
	return visits, err
}

// ListForZone returns entries created in the zone OR linked to a patient of
// the zone. The left join keeps unlinked entries in play for the creator
// zone half of the predicate.
func (r *HomeVisitRepository) ListForZone(zone string) ([]models.HomeVisit, error) {
	var visits []models.HomeVisit
	err := r.db.Preload("Patient").
		Joins("LEFT JOIN patients ON patients.id = home_visits.patient_id").
		Where("home_visits.creator_zone = ? OR patients.hc_zone = ?", zone, zone).
		Order("home_visits.visit_date desc").
		Find(&visits).Error
	return visits, err
}
