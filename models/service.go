package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID       uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`
	CategoryID    uuid.UUID `gorm:"type:uuid;index" json:"categoryId"`
	SubcategoryID string    `json:"subcategoryId"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Type          string    `json:"type"`
	Image         []byte    `gorm:"type:bytea" json:"-"`
	ImageType     string    `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

func (s *Service) ImageDataURI() string {
	return imageDataURI(s.Image, s.ImageType)
}
