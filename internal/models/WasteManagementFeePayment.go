package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WasteManagementFeePayment doubles as the application row for the waste
// service; its status column is payment_status rather than status.
type WasteManagementFeePayment struct {
	gorm.Model
	UserID    uint `json:"user_id"`
	ServiceID uint `json:"service_id"`

	PropertyAddress      string          `json:"property_address"`
	PropertyType         string          `json:"property_type"`
	PaymentAmount        decimal.Decimal `json:"payment_amount" gorm:"type:decimal(10,2)"`
	PaymentDate          time.Time       `json:"payment_date"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentStatus        string          `json:"payment_status" gorm:"default:pending"`
	TransactionReference string          `json:"transaction_reference"`

	ApplicationDate time.Time `json:"application_date" gorm:"autoCreateTime"`
}
