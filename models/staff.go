package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/utils"
)

type Staff struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID   uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Specialty string    `json:"specialty"`
	Image     []byte    `gorm:"type:bytea" json:"-"`
	ImageType string    `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(s.Password)
	if err != nil {
		return err
	}
	s.Password = hashed
	return
}

func (s *Staff) ImageDataURI() string {
	return imageDataURI(s.Image, s.ImageType)
}
