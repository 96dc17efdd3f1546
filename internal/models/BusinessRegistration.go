package models

import (
	"time"

	"gorm.io/gorm"
)

// BusinessRegistration carries a cluster_id so cluster admins can scope
// their dashboard to registrations inside their own clusters.
type BusinessRegistration struct {
	gorm.Model
	UserID    uint `json:"user_id"`
	ServiceID uint `json:"service_id"`
	ClusterID uint `json:"cluster_id"`

	BusinessName              string    `json:"business_name"`
	BusinessType              string    `json:"business_type"`
	BusinessSector            string    `json:"business_sector"`
	BusinessAddress           string    `json:"business_address"`
	LGAOfOperation            string    `json:"lga_of_operation"`
	ContactEmailAddress       string    `json:"contact_email_address"`
	ContactPhoneNumber        string    `json:"contact_phone_number"`
	RegistrationDate          time.Time `json:"registration_date"`
	IncorporationDocumentPath string    `json:"incorporation_document_path"`

	Status          string    `json:"status" gorm:"default:pending"`
	ApplicationDate time.Time `json:"application_date" gorm:"autoCreateTime"`
}
