package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order status lifecycle: booked -> confirmed.
const (
	OrderStatusBooked    = "booked"
	OrderStatusConfirmed = "confirmed"
)

// Payment status on the order itself: unset -> paid.
const (
	OrderPaymentUnset = "unset"
	OrderPaymentPaid  = "paid"
)

type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID       uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`
	ServiceID     uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	StaffID       uuid.UUID `gorm:"type:uuid;index;not null" json:"staffId"`
	CustomerName  string    `gorm:"not null" json:"customerName"`
	CustomerPhone string    `gorm:"not null" json:"customerPhone"`
	Date          string    `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time          string    `gorm:"not null" json:"time"` // HH:MM slot
	Status        string    `gorm:"type:varchar(20);default:'booked'" json:"status"`
	PaymentStatus string    `gorm:"type:varchar(20);default:'unset'" json:"paymentStatus"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Staff   *Staff   `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}
