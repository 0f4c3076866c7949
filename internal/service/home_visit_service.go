package service

import (
	"fmt"
	"time"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/policy"
)

// HomeVisitService owns outreach entries. Entries carry a source derived
// from the creator's role and the creator's zone, and are visible to an hc
// caller when either the creator zone or the linked patient's zone matches.
type HomeVisitService struct {
	visits HomeVisitRepository
}

func NewHomeVisitService(visits HomeVisitRepository) *HomeVisitService {
	return &HomeVisitService{visits: visits}
}

// HomeVisitInput carries the caller-supplied fields of an outreach entry.
type HomeVisitInput struct {
	PatientID *string              `json:"patientId"`
	CID       string               `json:"cid"`
	Name      string               `json:"name"`
	Kind      models.HomeVisitKind `json:"kind" binding:"required"`
	Note      string               `json:"note"`
}

// Create records an outreach entry. The entry must identify someone, either
// by patient link or by CID. Source and creator zone are stamped from the
// caller, never trusted from the request.
func (s *HomeVisitService) Create(caller policy.Caller, input HomeVisitInput) (*models.HomeVisit, error) {
	if err := policy.Authorize(caller, policy.ActionCreateHomeVisit, policy.AnyZone); err != nil {
		return nil, err
	}

	if input.CID == "" && (input.PatientID == nil || *input.PatientID == "") {
		return nil, fmt.Errorf("%w: CID or patient ID required", apperr.ErrInvalidInput)
	}

	if input.Kind != models.VisitKindPatient && input.Kind != models.VisitKindOSM {
		return nil, fmt.Errorf("%w: kind must be patient or osm", apperr.ErrInvalidInput)
	}

	source := models.VisitSourceHC
	if caller.Role == models.RoleHospital || caller.Role == models.RoleAdmin {
		source = models.VisitSourceHospital
	}

	// The clinic's calendar day, not a UTC one: truncating the instant
	// would shift early-morning entries to the previous date.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	visit := &models.HomeVisit{
		PatientID:   input.PatientID,
		CID:         input.CID,
		Name:        input.Name,
		Kind:        input.Kind,
		Note:        input.Note,
		Source:      source,
		CreatorZone: caller.Zone,
		VisitDate:   today,
	}

	if err := s.visits.Create(visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// List returns the outreach entries visible to the caller. Hospital and
// admin see everything; hc sees the union of entries created in their zone
// and entries linked to a patient of their zone.
func (s *HomeVisitService) List(caller policy.Caller) ([]models.HomeVisit, error) {
	if err := policy.Authorize(caller, policy.ActionViewHomeVisits, policy.AnyZone); err != nil {
		return nil, err
	}

	if policy.ZoneScoped(caller) {
		return s.visits.ListForZone(caller.Zone)
	}
	return s.visits.ListAll()
}
