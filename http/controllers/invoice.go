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
)

func CreateInvoice(c *fiber.Ctx) error {
	var req requests.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse invoice create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Validation failed",
		})
	}

	var customer models.Customer
	if err := db.DB.First(&customer, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Customer not found",
			})
		}
		return respondServiceError(c, err, "Customer not found")
	}

	now := time.Now()
	invoice := models.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		Status:        models.InvoiceStatusUnpaid,
		Notes:         req.Notes,
		PeriodStart:   now,
		PeriodEnd:     now.AddDate(0, 1, 0),
		DueDate:       now.AddDate(0, 1, 0),
	}
	if invoice.InvoiceNumber == "" {
		invoice.InvoiceNumber = fmt.Sprintf("INV-%s", uuid.NewString())
	}
	if req.PeriodStart != nil {
		invoice.PeriodStart = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		invoice.PeriodEnd = *req.PeriodEnd
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}

	if err := db.DB.Create(&invoice).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to insert invoice")
		return respondServiceError(c, err, "Invoice not found")
	}

	return c.Status(http.StatusCreated).JSON(responses.SuccessResponse{
		Success: true,
		Message: "Invoice created successfully",
		Data:    invoice,
	})
}

func GetAllInvoices(c *fiber.Ctx) error {
	query := db.DB.Preload("Customer")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Order("created_at DESC").Find(&invoices).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to fetch invoice list")
		return respondServiceError(c, err, "Invoice not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Invoice list retrieved successfully",
		Data:    invoices,
	})
}

func GetInvoiceByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid invoice ID",
		})
	}

	var invoice models.Invoice
	if err := db.DB.Preload("Customer").First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Invoice not found",
			})
		}
		return respondServiceError(c, err, "Invoice not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Data:    invoice,
	})
}

func DeleteInvoice(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid invoice ID",
		})
	}

	var invoice models.Invoice
	if err := db.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Invoice not found",
			})
		}
		return respondServiceError(c, err, "Invoice not found")
	}

	if err := db.DB.Delete(&invoice).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to delete invoice")
		return respondServiceError(c, err, "Invoice not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Invoice deleted successfully",
	})
}
