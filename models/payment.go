package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodQPay = "qpay"
)

// Payment status lifecycle: pending -> completed (or failed/refunded).
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID `gorm:"type:uuid;index;not null" json:"orderId"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	CardLastFour  string    `gorm:"type:varchar(4)" json:"cardLastFour,omitempty"`
	TransactionID string    `json:"transactionId"`
	Status        string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentDate   time.Time `json:"paymentDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
