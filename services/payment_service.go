// services/payment_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/models"
	"salonbook-backend/utils"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrNoPendingPayment = errors.New("no pending qpay payment for this order")
)

// ValidationError is a card-detail rejection, mapped to HTTP 400 by callers.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// CardDetails is the card checkout input.
type CardDetails struct {
	Number string `json:"cardNumber"`
	Holder string `json:"cardHolder"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)

// ValidateCard checks the card details in a fixed order; the first failing
// check wins and nothing is written anywhere.
func ValidateCard(card CardDetails, now time.Time) error {
	digits := strings.ReplaceAll(card.Number, " ", "")
	if len(digits) != 16 || !isDigits(digits) {
		return &ValidationError{Reason: "card number must be 16 digits"}
	}

	if strings.TrimSpace(card.Holder) == "" {
		return &ValidationError{Reason: "card holder name is required"}
	}

	m := expiryPattern.FindStringSubmatch(card.Expiry)
	if m == nil {
		return &ValidationError{Reason: "expiry must be in MM/YY format"}
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	year += 2000
	if year < now.Year() || (year == now.Year() && time.Month(month) < now.Month()) {
		return &ValidationError{Reason: "card has expired"}
	}

	if len(card.CVV) < 3 {
		return &ValidationError{Reason: "cvv must be at least 3 digits"}
	}

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// QPayInvoice is the fabricated QR payload returned to the client. No real
// gateway is contacted.
type QPayInvoice struct {
	InvoiceID string `json:"invoiceId"`
	QRText    string `json:"qrText"`
	QRImage   string `json:"qrImage"`
}

// PaymentService owns the order/payment state transitions. Completing a
// payment and confirming its order is a two-record write, so both happen
// inside a single transaction.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// PaymentsForOrder lists all payment records attached to an order.
func (s *PaymentService) PaymentsForOrder(orderID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("order_id = ?", orderID).Order("created_at").Find(&payments).Error
	return payments, err
}

// PayByCard validates the card details and, on success, records a completed
// card payment and confirms the order in one transaction. A failed check
// leaves the order and the payments table untouched.
func (s *PaymentService) PayByCard(orderID uuid.UUID, amount float64, card CardDetails) (*models.Payment, error) {
	if err := ValidateCard(card, time.Now()); err != nil {
		return nil, err
	}

	digits := strings.ReplaceAll(card.Number, " ", "")

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var order models.Order
	if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	payment := models.Payment{
		OrderID:       order.ID,
		Amount:        amount,
		PaymentMethod: models.PaymentMethodCard,
		CardLastFour:  digits[len(digits)-4:],
		TransactionID: "TXN-" + utils.GenerateRandomString(12),
		Status:        models.PaymentStatusCompleted,
		PaymentDate:   time.Now(),
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&order).Updates(map[string]interface{}{
		"status":         models.OrderStatusConfirmed,
		"payment_status": models.OrderPaymentPaid,
	}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// CreateQPayInvoice records a pending qpay payment and returns the QR
// payload the customer scans. The order is not touched until confirmation.
func (s *PaymentService) CreateQPayInvoice(orderID uuid.UUID, amount float64) (*models.Payment, *QPayInvoice, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, err
	}

	payment := models.Payment{
		OrderID:       order.ID,
		Amount:        amount,
		PaymentMethod: models.PaymentMethodQPay,
		Status:        models.PaymentStatusPending,
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, nil, err
	}

	invoiceID := uuid.NewString()
	qrText := fmt.Sprintf("SALONBOOK:%s:%s:%.2f", invoiceID, order.ID, amount)
	invoice := &QPayInvoice{
		InvoiceID: invoiceID,
		QRText:    qrText,
		QRImage:   "https://qpay.mn/q/?m=" + invoiceID,
	}

	return &payment, invoice, nil
}

// ConfirmQPay completes the pending qpay payment for the order and confirms
// the order, in one transaction. When no transaction id is supplied one is
// generated. A pending payment never transitions any other way.
func (s *PaymentService) ConfirmQPay(orderID uuid.UUID, transactionID string) (*models.Payment, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var order models.Order
	if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var payment models.Payment
	if err := tx.Where("order_id = ? AND payment_method = ? AND status = ?",
		order.ID, models.PaymentMethodQPay, models.PaymentStatusPending).
		Order("created_at DESC").First(&payment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingPayment
		}
		return nil, err
	}

	if transactionID == "" {
		transactionID = "QPAY-" + utils.GenerateRandomString(12)
	}

	payment.Status = models.PaymentStatusCompleted
	payment.TransactionID = transactionID
	payment.PaymentDate = time.Now()

	if err := tx.Save(&payment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&order).Updates(map[string]interface{}{
		"status":         models.OrderStatusConfirmed,
		"payment_status": models.OrderPaymentPaid,
	}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &payment, nil
}
