package models

import (
	"time"

	"gorm.io/gorm"
)

type StreetRegistration struct {
	gorm.Model
	UserID    uint `json:"user_id"`
	ServiceID uint `json:"service_id"`

	StreetName                string  `json:"street_name"`
	LGALocation               string  `json:"lga_location"`
	CommunityName             string  `json:"community_name"`
	NumberOfHouses            int     `json:"number_of_houses"`
	StreetLengthMeters        float64 `json:"street_length_meters"`
	StreetLightingStatus      string  `json:"street_lighting_status"`
	WasteDisposalSystemStatus string  `json:"waste_disposal_system_status"`
	RegistrationPurpose       string  `json:"registration_purpose"`
	SurveyMapPath             string  `json:"survey_map_path"`

	Status          string    `json:"status" gorm:"default:pending"`
	ApplicationDate time.Time `json:"application_date" gorm:"autoCreateTime"`
}
