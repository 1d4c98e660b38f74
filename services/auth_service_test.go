package services

import (
	"errors"
	"testing"

	"salonbook-backend/models"
)

func TestResolveLogin_Precedence(t *testing.T) {
	db := newTestDB(t)

	// The same email exists as a salon and as a staff member, with the same
	// password, so resolution order alone decides the role.
	salon := models.Salon{
		Name:     "Glow Studio",
		Email:    "shared@example.com",
		Password: "pass1234",
	}
	if err := db.Create(&salon).Error; err != nil {
		t.Fatalf("failed to create salon: %v", err)
	}

	staff := models.Staff{
		SalonID:  salon.ID,
		Name:     "Anar",
		Email:    "shared@example.com",
		Password: "pass1234",
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("failed to create staff: %v", err)
	}

	auth := NewAuthService(db, "admin@example.com", "adminpass")

	result, err := auth.ResolveLogin("shared@example.com", "pass1234")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if result.Role != RoleSalon {
		t.Fatalf("expected salon to win over staff, got %q", result.Role)
	}
	if result.ID != salon.ID.String() {
		t.Fatalf("expected salon id %s, got %s", salon.ID, result.ID)
	}
}

func TestResolveLogin_SuperAdminWinsOverSalon(t *testing.T) {
	db := newTestDB(t)

	salon := models.Salon{
		Name:     "Glow Studio",
		Email:    "admin@example.com",
		Password: "salonpass",
	}
	if err := db.Create(&salon).Error; err != nil {
		t.Fatalf("failed to create salon: %v", err)
	}

	auth := NewAuthService(db, "admin@example.com", "adminpass")

	result, err := auth.ResolveLogin("admin@example.com", "adminpass")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if result.Role != RoleSuperAdmin {
		t.Fatalf("expected superadmin, got %q", result.Role)
	}

	// The salon's own password still resolves to the salon.
	result, err = auth.ResolveLogin("admin@example.com", "salonpass")
	if err != nil {
		t.Fatalf("expected salon login to succeed, got %v", err)
	}
	if result.Role != RoleSalon {
		t.Fatalf("expected salon, got %q", result.Role)
	}
}

func TestResolveLogin_StaffFallthrough(t *testing.T) {
	db := newTestDB(t)

	salon := models.Salon{
		Name:     "Glow Studio",
		Email:    "glow@example.com",
		Password: "salonpass",
	}
	if err := db.Create(&salon).Error; err != nil {
		t.Fatalf("failed to create salon: %v", err)
	}

	staff := models.Staff{
		SalonID:   salon.ID,
		Name:      "Anar",
		Email:     "anar@example.com",
		Password:  "staffpass",
		Specialty: "coloring",
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("failed to create staff: %v", err)
	}

	auth := NewAuthService(db, "admin@example.com", "adminpass")

	result, err := auth.ResolveLogin("anar@example.com", "staffpass")
	if err != nil {
		t.Fatalf("expected staff login to succeed, got %v", err)
	}
	if result.Role != RoleStaff {
		t.Fatalf("expected staff, got %q", result.Role)
	}
	if result.SalonID != salon.ID.String() {
		t.Fatalf("expected staff tagged with salon %s, got %s", salon.ID, result.SalonID)
	}
}

func TestResolveLogin_BadCredentials(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "admin@example.com", "adminpass")

	if _, err := auth.ResolveLogin("nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := auth.ResolveLogin("admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad admin password, got %v", err)
	}
}
