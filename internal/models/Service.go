package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Catalog names of the six services. Submission handlers and the revenue
// report look services up by exact name.
const (
	ServiceDeathCertificate     = "Death Certificate"
	ServiceLocalGovernmentID    = "Local Government ID"
	ServiceClubRegistration     = "Club Association Registration"
	ServiceWasteManagementFees  = "Waste Management Fees"
	ServiceStreetRegistration   = "Street Registration"
	ServiceBusinessRegistration = "Business Registration"
)

// Service is a priced catalog entry. Prices move only through the
// superadmin-gated update endpoints.
type Service struct {
	gorm.Model
	ServiceName  string          `json:"service_name" gorm:"unique"`
	ServicePrice decimal.Decimal `json:"service_price" gorm:"type:decimal(10,2)"`
	Description  string          `json:"description"`
}
