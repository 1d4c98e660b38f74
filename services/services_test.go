package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.Staff{},
		&models.Category{},
		&models.Service{},
		&models.Order{},
		&models.Payment{},
		&models.User{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// createBookedOrder seeds a salon, staff member, service and a fresh order
// in the booked/unset state.
func createBookedOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()

	salon := models.Salon{
		Name:     "Glow Studio",
		Email:    "glow@example.com",
		Password: "secret123",
	}
	if err := db.Create(&salon).Error; err != nil {
		t.Fatalf("failed to create salon: %v", err)
	}

	staff := models.Staff{
		SalonID:  salon.ID,
		Name:     "Anar",
		Email:    "anar@example.com",
		Password: "secret123",
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("failed to create staff: %v", err)
	}

	service := models.Service{
		SalonID: salon.ID,
		Name:    "Haircut",
		Price:   45,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	order := models.Order{
		SalonID:       salon.ID,
		ServiceID:     service.ID,
		StaffID:       staff.ID,
		CustomerName:  "Bolor",
		CustomerPhone: "+97699112233",
		Date:          "2026-09-15",
		Time:          "14:30",
		Status:        models.OrderStatusBooked,
		PaymentStatus: models.OrderPaymentUnset,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to create order: %v", err)
	}

	return order
}
