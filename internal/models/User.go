package models

import "gorm.io/gorm"

// User is a citizen account. PID is the public 8-digit identifier shown on
// issued documents, distinct from the database id.
type User struct {
	gorm.Model
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	OtherNames           string `json:"other_names"`
	PhoneNumber          string `json:"phone_number"`
	EmailAddress         string `json:"email_address" gorm:"unique"`
	Nationality          string `json:"nationality"`
	HomeAddress          string `json:"home_address"`
	State                string `json:"state"`
	City                 string `json:"city"`
	LGA                  string `json:"lga"`
	PID                  string `json:"pid" gorm:"column:pid;uniqueIndex;size:8"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
	EmploymentStatus     string `json:"employment_status"`
	Password             string `json:"-"`
	ProfilePicturePath   string `json:"profile_picture_path"`
}
