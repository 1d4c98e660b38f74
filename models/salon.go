package models

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"salonbook-backend/utils"
)

// Coordinates is the salon's map position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Salon struct {
	ID          uuid.UUID                       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string                          `gorm:"not null" json:"name"`
	Location    string                          `json:"location"`
	Coordinates datatypes.JSONType[Coordinates] `gorm:"type:jsonb" json:"coordinates"`
	Phone       string                          `json:"phone"`
	Email       string                          `gorm:"uniqueIndex;not null" json:"email"`
	Password    string                          `gorm:"not null" json:"-"`
	Image       []byte                          `gorm:"type:bytea" json:"-"`
	ImageType   string                          `json:"-"`

	Staff      []Staff    `gorm:"foreignKey:SalonID" json:"-"`
	Services   []Service  `gorm:"foreignKey:SalonID" json:"-"`
	Categories []Category `gorm:"foreignKey:SalonID" json:"-"`
	Orders     []Order    `gorm:"foreignKey:SalonID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and hash the password before creating
func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
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

// ImageDataURI renders the stored image bytes as a base64 data URI,
// or "" when no image is stored.
func (s *Salon) ImageDataURI() string {
	return imageDataURI(s.Image, s.ImageType)
}

func imageDataURI(data []byte, mime string) string {
	if len(data) == 0 {
		return ""
	}
	if mime == "" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
