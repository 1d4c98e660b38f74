package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"
)

type DashboardOverview struct {
	TotalOrders     int64   `json:"totalOrders"`
	OrdersToday     int64   `json:"ordersToday"`
	ConfirmedOrders int64   `json:"confirmedOrders"`
	StaffCount      int64   `json:"staffCount"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

// GetDashboardOverview returns booking and revenue counters for the salon's
// admin screen. Revenue only counts completed payments.
func GetDashboardOverview(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var overview DashboardOverview

	config.DB.Model(&models.Order{}).
		Where("salon_id = ?", salonUUID).
		Count(&overview.TotalOrders)

	today := utils.BeginningOfDay(time.Now()).Format("2006-01-02")
	config.DB.Model(&models.Order{}).
		Where("salon_id = ? AND date = ?", salonUUID, today).
		Count(&overview.OrdersToday)

	config.DB.Model(&models.Order{}).
		Where("salon_id = ? AND status = ?", salonUUID, models.OrderStatusConfirmed).
		Count(&overview.ConfirmedOrders)

	config.DB.Model(&models.Staff{}).
		Where("salon_id = ?", salonUUID).
		Count(&overview.StaffCount)

	config.DB.Model(&models.Payment{}).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("orders.salon_id = ? AND payments.status = ?", salonUUID, models.PaymentStatusCompleted).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&overview.TotalRevenue)

	firstOfMonth := utils.BeginningOfMonth(time.Now())
	config.DB.Model(&models.Payment{}).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("orders.salon_id = ? AND payments.status = ? AND payments.payment_date >= ?",
			salonUUID, models.PaymentStatusCompleted, firstOfMonth).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&overview.MonthlyRevenue)

	c.JSON(http.StatusOK, overview)
}
