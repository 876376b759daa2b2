package controllers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ispbilling-backend/db"
	"ispbilling-backend/http/requests"
	"ispbilling-backend/http/responses"
	"ispbilling-backend/logger"
	"ispbilling-backend/models"
)

func CreateCustomer(c *fiber.Ctx) error {
	var req requests.CreateOrUpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse customer create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := req.Validate(); err != nil {
		logger.Logger.WithError(err).Error("Validation failed for customer create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Validation failed",
		})
	}

	customer := models.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PppProfileID: req.PppProfileID,
		IsActive:     req.IsActive,
	}

	if err := db.DB.Create(&customer).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to insert customer")
		return respondServiceError(c, err, "Customer not found")
	}

	return c.Status(http.StatusCreated).JSON(responses.SuccessResponse{
		Success: true,
		Message: "Customer created successfully",
		Data:    customer,
	})
}

func UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid customer ID",
		})
	}

	var req requests.CreateOrUpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse customer update request")
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
	if err := db.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Customer not found",
			})
		}
		return respondServiceError(c, err, "Customer not found")
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.PppProfileID = req.PppProfileID
	customer.IsActive = req.IsActive

	if err := db.DB.Save(&customer).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to update customer")
		return respondServiceError(c, err, "Customer not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Customer updated successfully",
		Data:    customer,
	})
}

// DeleteCustomer removes the customer. Their PPP secrets survive detached
// (customer_id goes null via the FK rule).
func DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid customer ID",
		})
	}

	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Customer not found",
			})
		}
		return respondServiceError(c, err, "Customer not found")
	}

	if err := db.DB.Delete(&customer).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to delete customer")
		return respondServiceError(c, err, "Customer not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Customer deleted successfully",
	})
}

func GetAllCustomers(c *fiber.Ctx) error {
	var customers []models.Customer
	if err := db.DB.Preload("PppProfile").Find(&customers).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to fetch customer list")
		return respondServiceError(c, err, "Customer not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Customer list retrieved successfully",
		Data:    customers,
	})
}

func GetCustomerByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid customer ID",
		})
	}

	var customer models.Customer
	if err := db.DB.Preload("PppProfile").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Customer not found",
			})
		}
		return respondServiceError(c, err, "Customer not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Data:    customer,
	})
}
