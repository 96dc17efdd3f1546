package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatuses is the closed vocabulary accepted by the payment status
// update endpoint.
var PaymentStatuses = []string{"pending", "awaiting admin approval", "approved", "rejected", "failed"}

// Payment links a fee payment to the registration it settles and the
// catalog service it pays for.
type Payment struct {
	gorm.Model
	ServiceID      uint `json:"service_id"`
	UserID         uint `json:"user_id"`
	RegistrationID uint `json:"registration_id"`

	PaymentAmount        decimal.Decimal `json:"payment_amount" gorm:"type:decimal(10,2)"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentStatus        string          `json:"payment_status" gorm:"default:pending"`
	TransactionReference string          `json:"transaction_reference"`
	PaymentDate          time.Time       `json:"payment_date" gorm:"autoCreateTime"`
}
