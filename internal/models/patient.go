package models

// Patient represents an NCD patient registered with the hospital or one of
// its health-center zones. HN and CID are independent uniqueness keys.
type Patient struct {
	BaseModel
	HN            string `gorm:"uniqueIndex;size:50;not null" json:"hn"`
	Name          string `gorm:"size:255" json:"name"`
	CID           string `gorm:"uniqueIndex;size:20;not null" json:"cid"` // 13-digit national ID
	Phone         string `gorm:"size:50" json:"phone,omitempty"`
	MedicalRights string `gorm:"size:255" json:"medicalRights,omitempty"`
	Clinic        string `gorm:"size:100" json:"clinic,omitempty"`

	// Address
	HouseNo  string `gorm:"size:50" json:"houseNo,omitempty"`
	Moo      string `gorm:"size:20" json:"moo,omitempty"`
	Tumbol   string `gorm:"size:100" json:"tumbol,omitempty"`
	Amphoe   string `gorm:"size:100" json:"amphoe,omitempty"`
	Province string `gorm:"size:100" json:"province,omitempty"`

	Color string `gorm:"size:20" json:"color,omitempty"` // Green, Yellow, Red

	// HCZone matches User.Zone of the responsible health center.
	HCZone string `gorm:"size:255;index" json:"hcZone"`

	// Relations (not always preloaded)
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}
