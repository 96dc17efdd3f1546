package models

import (
	"time"

	"gorm.io/gorm"
)

type LocalGovernmentIDApplication struct {
	gorm.Model
	UserID    uint `json:"user_id"`
	ServiceID uint `json:"service_id"`

	ApplicantFirstName string    `json:"applicant_first_name"`
	ApplicantLastName  string    `json:"applicant_last_name"`
	ApplicantOtherNames string   `json:"applicant_other_names"`
	DateOfBirth        time.Time `json:"date_of_birth"`
	Gender             string    `json:"gender"`
	Occupation         string    `json:"occupation"`
	HomeAddress        string    `json:"home_address"`
	LGAOfOrigin        string    `json:"lga_of_origin"`
	PhoneNumber        string    `json:"phone_number"`
	EmailAddress       string    `json:"email_address"`
	ApplicationReason  string    `json:"application_reason"`
	PassportPhotoPath  string    `json:"passport_photo_path"`

	Status          string    `json:"status" gorm:"default:pending"`
	ApplicationDate time.Time `json:"application_date" gorm:"autoCreateTime"`
}
