package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHospital Role = "hospital"
	RoleHC       Role = "hc"
)

// ValidRole reports whether r is one of the closed set of staff roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleHospital, RoleHC:
		return true
	}
	return false
}

// User represents a staff account. Zone is the health-center catchment a
// user of role hc belongs to; it is ignored for admin and hospital accounts.
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Role     Role   `gorm:"size:20;not null" json:"role"`
	Zone     string `gorm:"size:255" json:"zone,omitempty"`
	Name     string `gorm:"size:255" json:"name,omitempty"`
	Position string `gorm:"size:255" json:"position,omitempty"`

	// Relations (not always preloaded)
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Zone     string `json:"zone,omitempty"`
	Name     string `json:"name,omitempty"`
	Position string `json:"position,omitempty"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Zone:     u.Zone,
		Name:     u.Name,
		Position: u.Position,
	}
}
