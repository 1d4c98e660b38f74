// controllers/payment.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook-backend/config"
	"salonbook-backend/services"
	"salonbook-backend/utils"
)

// CardPaymentInput defines the expected JSON structure for a card checkout
type CardPaymentInput struct {
	Amount     float64 `json:"amount" binding:"required,min=0"`
	CardNumber string  `json:"cardNumber" binding:"required"`
	CardHolder string  `json:"cardHolder"`
	Expiry     string  `json:"expiry" binding:"required"`
	CVV        string  `json:"cvv" binding:"required"`
}

// QPayInput defines the expected JSON structure for creating a qpay invoice
type QPayInput struct {
	Amount float64 `json:"amount" binding:"required,min=0"`
}

// QPayConfirmInput carries the externally supplied transaction identifier,
// if any.
type QPayConfirmInput struct {
	TransactionID string `json:"transactionId"`
}

func paymentService() *services.PaymentService {
	return services.NewPaymentService(config.DB)
}

func respondPaymentError(c *gin.Context, err error) {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		utils.RespondWithError(c, http.StatusBadRequest, validation.Reason)
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, services.ErrNoPendingPayment):
		utils.RespondWithError(c, http.StatusNotFound, "No pending qpay payment for this order")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Payment processing failed")
	}
}

// GetPayments lists all payment records of an order.
func GetPayments(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	payments, err := paymentService().PaymentsForOrder(orderUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// PayByCard validates the card details and, on success, completes the
// payment and confirms the order.
func PayByCard(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input CardPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, err := paymentService().PayByCard(orderUUID, input.Amount, services.CardDetails{
		Number: input.CardNumber,
		Holder: input.CardHolder,
		Expiry: input.Expiry,
		CVV:    input.CVV,
	})
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment completed successfully",
		"payment": payment,
	})
}

// QPayDispatch splits the shared /qpay/*action catch-all into invoice
// creation (/qpay/:orderId) and confirmation (/qpay/confirm/:orderId).
func QPayDispatch(c *gin.Context) {
	action := strings.Trim(c.Param("action"), "/")
	if rest, ok := strings.CutPrefix(action, "confirm/"); ok {
		c.Params = append(c.Params, gin.Param{Key: "orderId", Value: rest})
		ConfirmQPay(c)
		return
	}
	c.Params = append(c.Params, gin.Param{Key: "orderId", Value: action})
	CreateQPayInvoice(c)
}

// CreateQPayInvoice records a pending qpay payment and returns the QR
// payload.
func CreateQPayInvoice(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input QPayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, invoice, err := paymentService().CreateQPayInvoice(orderUUID, input.Amount)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "QPay invoice created",
		"payment": payment,
		"invoice": invoice,
	})
}

// ConfirmQPay completes the pending qpay payment and confirms the order.
func ConfirmQPay(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	// Body is optional; an absent transaction id gets one generated.
	var input QPayConfirmInput
	_ = c.ShouldBindJSON(&input)

	payment, err := paymentService().ConfirmQPay(orderUUID, input.TransactionID)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment confirmed successfully",
		"payment": payment,
	})
}
