package models

import (
	"time"
)

// AppointmentStatus represents the status of a follow-up appointment
type AppointmentStatus string

const (
	StatusPending      AppointmentStatus = "pending"
	StatusCompleted    AppointmentStatus = "completed"
	StatusReferredBack AppointmentStatus = "referred_back"
)

// Appointment represents a scheduled follow-up visit for a patient.
// Once completed it is frozen: update and delete are rejected.
type Appointment struct {
	BaseModel
	PatientID string            `gorm:"size:36;index;not null" json:"patientId"`
	Date      time.Time         `gorm:"type:date" json:"appointmentDate"`
	Note      string            `gorm:"type:text" json:"note,omitempty"`
	Status    AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`

	// Readings recorded at the health center. Two blood-pressure rounds
	// plus one blood sugar value, populated when the visit is recorded.
	BPSys      *int `json:"bpSys,omitempty"`
	BPDia      *int `json:"bpDia,omitempty"`
	BPSys2     *int `json:"bpSys2,omitempty"`
	BPDia2     *int `json:"bpDia2,omitempty"`
	BloodSugar *int `json:"bloodSugar,omitempty"` // mg/dL

	ReferBackNote string `gorm:"type:text" json:"referBackNote,omitempty"`

	// Which measurements the hospital asked the health center to take.
	ReqBP bool `gorm:"default:false" json:"reqBp"`
	ReqBS bool `gorm:"default:false" json:"reqBs"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient"`
}
