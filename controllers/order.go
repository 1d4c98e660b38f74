// controllers/order.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"
)

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	ServiceID     uuid.UUID `json:"serviceId" binding:"required"`
	StaffID       uuid.UUID `json:"staffId" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerPhone string    `json:"customerPhone" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	Time          string    `json:"time" binding:"required"`
}

// UpdateOrderInput defines the expected JSON structure for updating an order
type UpdateOrderInput struct {
	ServiceID     *uuid.UUID `json:"serviceId"`
	StaffID       *uuid.UUID `json:"staffId"`
	CustomerName  *string    `json:"customerName"`
	CustomerPhone *string    `json:"customerPhone"`
	Date          *string    `json:"date"`
	Time          *string    `json:"time"`
	Status        *string    `json:"status" binding:"omitempty,oneof=booked confirmed"`
}

// CreateOrder books a service with a staff member. New orders always start
// as booked with payment unset; only the payment flow moves them on.
func CreateOrder(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate service and staff belong to the same salon
	var service models.Service
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.ServiceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var staff models.Staff
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.StaffID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	order := models.Order{
		SalonID:       salonUUID,
		ServiceID:     input.ServiceID,
		StaffID:       input.StaffID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Date:          input.Date,
		Time:          input.Time,
		Status:        models.OrderStatusBooked,
		PaymentStatus: models.OrderPaymentUnset,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders lists a salon's orders with the referenced service and staff
// expanded.
func GetOrders(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Service").Preload("Staff").
		Where("salon_id = ?", salonUUID).
		Order("date, time").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder retrieves a single order with its service and staff expanded.
func GetOrder(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	orderUUID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Service").Preload("Staff").
		Where("salon_id = ? AND id = ?", salonUUID, orderUUID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrder overwrites only the fields provided in the request body.
func UpdateOrder(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	orderUUID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var order models.Order
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, orderUUID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ServiceID != nil {
		var service models.Service
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.ServiceID).
			First(&service).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
			return
		}
		order.ServiceID = *input.ServiceID
	}
	if input.StaffID != nil {
		var staff models.Staff
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.StaffID).
			First(&staff).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Staff not found")
			return
		}
		order.StaffID = *input.StaffID
	}
	if input.CustomerName != nil {
		order.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		order.CustomerPhone = *input.CustomerPhone
	}
	if input.Date != nil {
		order.Date = *input.Date
	}
	if input.Time != nil {
		order.Time = *input.Time
	}
	if input.Status != nil {
		order.Status = *input.Status
	}

	if err := config.DB.Save(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order.
func DeleteOrder(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	orderUUID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, orderUUID).
		Delete(&models.Order{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
