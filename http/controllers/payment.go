package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ispbilling-backend/db"
	"ispbilling-backend/http/requests"
	"ispbilling-backend/http/responses"
	"ispbilling-backend/logger"
	"ispbilling-backend/models"
	"ispbilling-backend/services"
)

func CreatePayment(c *fiber.Ctx) error {
	var req requests.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse payment create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := req.Validate(); err != nil {
		logger.Logger.WithError(err).Error("Validation failed for payment create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Validation failed",
		})
	}

	var invoice models.Invoice
	if err := db.DB.First(&invoice, req.InvoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Invoice not found",
			})
		}
		return respondServiceError(c, err, "Invoice not found")
	}

	payment := models.Payment{
		PaymentNumber: req.PaymentNumber,
		InvoiceID:     req.InvoiceID,
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Proof:         req.Proof,
		Status:        models.PaymentStatusPending,
		Notes:         req.Notes,
		Date:          time.Now(),
	}
	if payment.PaymentNumber == "" {
		payment.PaymentNumber = fmt.Sprintf("PAY-%s", uuid.NewString())
	}
	if req.Date != nil {
		payment.Date = *req.Date
	}

	if err := db.DB.Create(&payment).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to insert payment")
		return respondServiceError(c, err, "Payment not found")
	}

	return c.Status(http.StatusCreated).JSON(responses.SuccessResponse{
		Success: true,
		Message: "Payment created successfully",
		Data:    payment,
	})
}

// VerifyPayment marks a pending payment verified, settles its invoice and
// emits a "payment" notification carrying the typed payload the panel
// renders. The whole flow is one transaction.
func VerifyPayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid payment ID",
		})
	}

	var payment models.Payment
	if err := db.DB.Preload("Customer").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Payment not found",
			})
		}
		return respondServiceError(c, err, "Payment not found")
	}

	if payment.Status == models.PaymentStatusVerified {
		return c.JSON(responses.SuccessResponse{
			Success: true,
			Message: "Payment already verified",
			Data:    payment,
		})
	}

	now := time.Now()
	verifier := currentUserID(c)

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		payment.Status = models.PaymentStatusVerified
		payment.VerifiedBy = verifier
		payment.VerifiedAt = &now
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Invoice{}).Where("id = ?", payment.InvoiceID).
			Update("status", models.InvoiceStatusPaid).Error; err != nil {
			return err
		}

		data := map[string]interface{}{
			"amount":         payment.Amount,
			"payment_method": payment.PaymentMethod,
		}
		if payment.Customer != nil {
			data["customer_name"] = payment.Customer.Name
		}
		_, err := services.NewNotificationService(tx).Create(services.CreateNotificationInput{
			Type:    "payment",
			Title:   "Payment Received",
			Message: fmt.Sprintf("Payment %s was verified", payment.PaymentNumber),
			Data:    data,
			Icon:    "cash",
			Color:   models.NotificationColorSuccess,
		})
		return err
	})
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to verify payment")
		return respondServiceError(c, err, "Payment not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Payment verified successfully",
		Data:    payment,
	})
}

func RejectPayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid payment ID",
		})
	}

	// Notes are optional; a bodyless reject is fine.
	var req requests.RejectPaymentRequest
	_ = c.BodyParser(&req)

	var payment models.Payment
	if err := db.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Payment not found",
			})
		}
		return respondServiceError(c, err, "Payment not found")
	}

	if payment.Status == models.PaymentStatusVerified {
		return c.Status(http.StatusConflict).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Verified payments cannot be rejected",
		})
	}

	payment.Status = models.PaymentStatusRejected
	if req.Notes != "" {
		payment.Notes = req.Notes
	}
	if err := db.DB.Save(&payment).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to reject payment")
		return respondServiceError(c, err, "Payment not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Payment rejected",
		Data:    payment,
	})
}

func GetAllPayments(c *fiber.Ctx) error {
	query := db.DB.Preload("Customer").Preload("Invoice")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := query.Order("created_at DESC").Find(&payments).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to fetch payment list")
		return respondServiceError(c, err, "Payment not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Payment list retrieved successfully",
		Data:    payments,
	})
}

func DeletePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid payment ID",
		})
	}

	var payment models.Payment
	if err := db.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Payment not found",
			})
		}
		return respondServiceError(c, err, "Payment not found")
	}

	if err := db.DB.Delete(&payment).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to delete payment")
		return respondServiceError(c, err, "Payment not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Payment deleted successfully",
	})
}
