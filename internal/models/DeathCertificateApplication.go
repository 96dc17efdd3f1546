package models

import (
	"time"

	"gorm.io/gorm"
)

// Application status vocabulary. Rows start at pending, move to
// "awaiting admin approval" when a payment is recorded, and end in
// Approved or Rejected through the admin review endpoints.
const (
	StatusPending          = "pending"
	StatusAwaitingApproval = "awaiting admin approval"
	StatusApproved         = "Approved"
	StatusRejected         = "Rejected"
	StatusCompleted        = "completed"
)

type DeathCertificateApplication struct {
	gorm.Model
	UserID    uint `json:"user_id"`
	ServiceID uint `json:"service_id"`

	DeceasedFirstName     string    `json:"deceased_first_name"`
	DeceasedLastName      string    `json:"deceased_last_name"`
	DeceasedOtherNames    string    `json:"deceased_other_names"`
	DateOfDeath           time.Time `json:"date_of_death"`
	PlaceOfDeath          string    `json:"place_of_death"`
	CauseOfDeath          string    `json:"cause_of_death"`
	ApplicantRelationship string    `json:"applicant_relationship"`
	ApplicantPhoneNumber  string    `json:"applicant_phone_number"`
	ApplicantEmailAddress string    `json:"applicant_email_address"`
	ApplicantAddress      string    `json:"applicant_address"`

	Status          string    `json:"status" gorm:"default:pending"`
	ApplicationDate time.Time `json:"application_date" gorm:"autoCreateTime"`
}
