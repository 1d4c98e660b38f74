// services/auth_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"salonbook-backend/models"
	"salonbook-backend/utils"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleSalon      = "salon"
	RoleStaff      = "staff"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginResult is the role-tagged payload returned on a successful login.
type LoginResult struct {
	Role    string `json:"role"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	SalonID string `json:"salonId,omitempty"`
}

// AuthService resolves logins in a fixed order: the configured super-admin
// credential first, then salons, then staff. The first record whose
// password matches wins.
type AuthService struct {
	db         *gorm.DB
	adminEmail string
	adminHash  string
}

func NewAuthService(db *gorm.DB, adminEmail, adminPassword string) *AuthService {
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		panic("failed to hash admin password")
	}
	return &AuthService{db: db, adminEmail: adminEmail, adminHash: hash}
}

func (s *AuthService) ResolveLogin(email, password string) (*LoginResult, error) {
	if email == s.adminEmail && utils.CheckPasswordHash(password, s.adminHash) {
		return &LoginResult{
			Role:  RoleSuperAdmin,
			Name:  "Super Admin",
			Email: s.adminEmail,
		}, nil
	}

	var salon models.Salon
	err := s.db.Where("email = ?", email).First(&salon).Error
	if err == nil && utils.CheckPasswordHash(password, salon.Password) {
		return &LoginResult{
			Role:  RoleSalon,
			ID:    salon.ID.String(),
			Name:  salon.Name,
			Email: salon.Email,
		}, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var staff models.Staff
	err = s.db.Where("email = ?", email).First(&staff).Error
	if err == nil && utils.CheckPasswordHash(password, staff.Password) {
		return &LoginResult{
			Role:    RoleStaff,
			ID:      staff.ID.String(),
			Name:    staff.Name,
			Email:   staff.Email,
			SalonID: staff.SalonID.String(),
		}, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrInvalidCredentials
}
