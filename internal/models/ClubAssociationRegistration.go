package models

import (
	"time"

	"gorm.io/gorm"
)

type ClubAssociationRegistration struct {
	gorm.Model
	UserID    uint `json:"user_id"`
	ServiceID uint `json:"service_id"`

	ClubAssociationName      string    `json:"club_association_name"`
	NatureOfClubAssociation  string    `json:"nature_of_club_association"`
	RegistrationAddress      string    `json:"registration_address"`
	LGAOfOperation           string    `json:"lga_of_operation"`
	ContactPersonName        string    `json:"contact_person_name"`
	ContactPersonPhone       string    `json:"contact_person_phone"`
	ContactPersonEmail       string    `json:"contact_person_email"`
	RegistrationDate         time.Time `json:"registration_date"`
	ConstitutionDocumentPath string    `json:"constitution_document_path"`

	Status          string    `json:"status" gorm:"default:pending"`
	ApplicationDate time.Time `json:"application_date" gorm:"autoCreateTime"`
}
