package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProfileRole represents the role of a profile within the system
type ProfileRole string

const (
	RoleSuperAdmin ProfileRole = "super_admin"
	RoleAdmin      ProfileRole = "admin"
	RoleStudent    ProfileRole = "student"
)

// Profile binds an identity to an institution with a role. The user ID is
// the identity provider's identity ID, not a separately generated key.
type Profile struct {
	UserID        uuid.UUID   `json:"user_id"`
	Email         string      `json:"email"`
	FullName      string      `json:"full_name"`
	Role          ProfileRole `json:"role"`
	InstitutionID *uuid.UUID  `json:"institution_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewAdminProfile creates an administrator profile bound to an institution.
// Admin profiles must reference an institution; that referential integrity
// is enforced here because the identity and institution stores are separate
// services with no cross-store constraints.
func NewAdminProfile(userID, institutionID uuid.UUID, email, fullName string) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	if institutionID == uuid.Nil {
		return nil, fmt.Errorf("admin profile requires an institution ID")
	}

	profile, err := newProfile(userID, email, fullName, RoleAdmin)
	if err != nil {
		return nil, err
	}
	profile.InstitutionID = &institutionID
	return profile, nil
}

// NewStudentProfile creates a student profile. Students may be created
// before they are bound to an institution.
func NewStudentProfile(userID uuid.UUID, email, fullName string) (*Profile, error) {
	return newProfile(userID, email, fullName, RoleStudent)
}

func newProfile(userID uuid.UUID, email, fullName string, role ProfileRole) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	now := time.Now()

	return &Profile{
		UserID:    userID,
		Email:     email,
		FullName:  fullName,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsAdmin returns true if the profile has administrative privileges
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperAdmin
}

// BindInstitution attaches the profile to an institution
func (p *Profile) BindInstitution(institutionID uuid.UUID) error {
	if institutionID == uuid.Nil {
		return fmt.Errorf("institution ID is required")
	}
	p.InstitutionID = &institutionID
	p.UpdatedAt = time.Now()
	return nil
}
