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

func CreatePppSecret(c *fiber.Ctx) error {
	var req requests.CreateOrUpdatePppSecretRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse PPP secret create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := req.Validate(); err != nil {
		logger.Logger.WithError(err).Error("Validation failed for PPP secret create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Validation failed",
		})
	}

	var profile models.PppProfile
	if err := db.DB.First(&profile, req.PppProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP profile not found",
			})
		}
		return respondServiceError(c, err, "PPP profile not found")
	}

	secret := models.PppSecret{
		Username:         req.Username,
		Password:         req.Password,
		Service:          req.Service,
		LocalAddress:     req.LocalAddress,
		RemoteAddress:    req.RemoteAddress,
		PppProfileID:     req.PppProfileID,
		CustomerID:       req.CustomerID,
		MikrotikID:       req.MikrotikID,
		AutoSync:         req.AutoSync,
		Comment:          req.Comment,
		InstallationDate: req.InstallationDate,
		DueDate:          req.DueDate,
		IsActive:         req.IsActive,
	}
	if secret.Service == "" {
		secret.Service = "pppoe"
	}

	if err := db.DB.Create(&secret).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to insert PPP secret")
		return respondServiceError(c, err, "PPP secret not found")
	}

	return c.Status(http.StatusCreated).JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP secret created successfully",
		Data:    secret,
	})
}

func UpdatePppSecret(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP secret ID",
		})
	}

	var req requests.CreateOrUpdatePppSecretRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse PPP secret update request")
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

	var secret models.PppSecret
	if err := db.DB.First(&secret, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP secret not found",
			})
		}
		return respondServiceError(c, err, "PPP secret not found")
	}

	secret.Username = req.Username
	secret.Password = req.Password
	if req.Service != "" {
		secret.Service = req.Service
	}
	secret.LocalAddress = req.LocalAddress
	secret.RemoteAddress = req.RemoteAddress
	secret.CustomerID = req.CustomerID
	secret.MikrotikID = req.MikrotikID
	secret.AutoSync = req.AutoSync
	secret.Comment = req.Comment
	secret.InstallationDate = req.InstallationDate
	secret.DueDate = req.DueDate
	secret.IsActive = req.IsActive

	// Profile moves go through ChangePppSecretProfile so the original
	// profile is recorded; a plain update keeps the current binding.
	if req.PppProfileID != secret.PppProfileID {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Use the change-profile endpoint to move a secret between profiles",
		})
	}

	if err := db.DB.Save(&secret).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to update PPP secret")
		return respondServiceError(c, err, "PPP secret not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP secret updated successfully",
		Data:    secret,
	})
}

// ChangePppSecretProfile moves a secret to another profile and records the
// prior one in original_ppp_profile_id.
func ChangePppSecretProfile(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP secret ID",
		})
	}

	var req requests.ChangePppSecretProfileRequest
	if err := c.BodyParser(&req); err != nil {
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

	var secret models.PppSecret
	if err := db.DB.First(&secret, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP secret not found",
			})
		}
		return respondServiceError(c, err, "PPP secret not found")
	}

	var profile models.PppProfile
	if err := db.DB.First(&profile, req.PppProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP profile not found",
			})
		}
		return respondServiceError(c, err, "PPP profile not found")
	}

	if profile.ID == secret.PppProfileID {
		return c.JSON(responses.SuccessResponse{
			Success: true,
			Message: "PPP secret already on this profile",
			Data:    secret,
		})
	}

	previous := secret.PppProfileID
	secret.OriginalPppProfileID = &previous
	secret.PppProfileID = profile.ID

	if err := db.DB.Save(&secret).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to change PPP secret profile")
		return respondServiceError(c, err, "PPP secret not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP secret profile changed successfully",
		Data:    secret,
	})
}

func DeletePppSecret(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP secret ID",
		})
	}

	var secret models.PppSecret
	if err := db.DB.First(&secret, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP secret not found",
			})
		}
		return respondServiceError(c, err, "PPP secret not found")
	}

	if err := db.DB.Delete(&secret).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to delete PPP secret")
		return respondServiceError(c, err, "PPP secret not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP secret deleted successfully",
	})
}

func GetAllPppSecrets(c *fiber.Ctx) error {
	var secrets []models.PppSecret
	if err := db.DB.Preload("PppProfile").Preload("Customer").Find(&secrets).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to fetch PPP secret list")
		return respondServiceError(c, err, "PPP secret not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP secret list retrieved successfully",
		Data:    secrets,
	})
}

func GetPppSecretByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP secret ID",
		})
	}

	var secret models.PppSecret
	if err := db.DB.Preload("PppProfile").Preload("Customer").First(&secret, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP secret not found",
			})
		}
		return respondServiceError(c, err, "PPP secret not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Data:    secret,
	})
}
