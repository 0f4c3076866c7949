package models

import (
	"time"
)

// HomeVisitKind represents what kind of person a home visit targets
type HomeVisitKind string

const (
	VisitKindPatient HomeVisitKind = "patient"
	VisitKindOSM     HomeVisitKind = "osm" // village health volunteer
)

// HomeVisitSource records which side of the system created an entry.
// It is derived from the creator's role, never taken from the request.
type HomeVisitSource string

const (
	VisitSourceHospital HomeVisitSource = "hospital"
	VisitSourceHC       HomeVisitSource = "hc"
)

// HomeVisit represents an outreach entry. It either links to a registered
// patient or carries a CID/name for people outside the registry.
type HomeVisit struct {
	BaseModel
	PatientID *string       `gorm:"size:36;index" json:"patientId,omitempty"` // optional link
	CID       string        `gorm:"size:20" json:"cid,omitempty"`
	Name      string        `gorm:"size:255" json:"name,omitempty"`
	Kind      HomeVisitKind `gorm:"size:20" json:"kind"`
	Note      string        `gorm:"type:text" json:"note,omitempty"`

	Source      HomeVisitSource `gorm:"size:20" json:"source"`
	CreatorZone string          `gorm:"size:255;index" json:"creatorZone,omitempty"`
	VisitDate   time.Time       `gorm:"type:date" json:"visitDate"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}
