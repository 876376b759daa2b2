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

func CreatePppProfile(c *fiber.Ctx) error {
	var req requests.CreateOrUpdatePppProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse PPP profile create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := req.Validate(); err != nil {
		logger.Logger.WithError(err).Error("Validation failed for PPP profile create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Validation failed",
		})
	}

	profile := models.PppProfile{
		Name:            req.Name,
		LocalAddress:    req.LocalAddress,
		RemoteAddress:   req.RemoteAddress,
		RateLimit:       req.RateLimit,
		ParentQueue:     req.ParentQueue,
		OnlyOne:         req.OnlyOne,
		Price:           req.Price,
		BillingCycleDay: req.BillingCycleDay,
		BillingPeriod:   req.BillingPeriod,
		IsActive:        req.IsActive,
		MikrotikID:      req.MikrotikID,
		AutoSync:        req.AutoSync,
		Description:     req.Description,
	}

	if err := db.DB.Create(&profile).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to insert PPP profile")
		return respondServiceError(c, err, "PPP profile not found")
	}

	return c.Status(http.StatusCreated).JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP profile created successfully",
		Data:    profile,
	})
}

func UpdatePppProfile(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP profile ID",
		})
	}

	var req requests.CreateOrUpdatePppProfileRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse PPP profile update request")
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

	var profile models.PppProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP profile not found",
			})
		}
		return respondServiceError(c, err, "PPP profile not found")
	}

	profile.Name = req.Name
	profile.LocalAddress = req.LocalAddress
	profile.RemoteAddress = req.RemoteAddress
	profile.RateLimit = req.RateLimit
	profile.ParentQueue = req.ParentQueue
	profile.OnlyOne = req.OnlyOne
	profile.Price = req.Price
	profile.BillingCycleDay = req.BillingCycleDay
	profile.BillingPeriod = req.BillingPeriod
	profile.IsActive = req.IsActive
	profile.MikrotikID = req.MikrotikID
	profile.AutoSync = req.AutoSync
	profile.Description = req.Description

	if err := db.DB.Save(&profile).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to update PPP profile")
		return respondServiceError(c, err, "PPP profile not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP profile updated successfully",
		Data:    profile,
	})
}

// DeletePppProfile removes a profile and, through the FK rule, every PPP
// secret attached to it.
func DeletePppProfile(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP profile ID",
		})
	}

	var profile models.PppProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP profile not found",
			})
		}
		return respondServiceError(c, err, "PPP profile not found")
	}

	if err := db.DB.Delete(&profile).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to delete PPP profile")
		return respondServiceError(c, err, "PPP profile not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP profile deleted successfully",
	})
}

func GetAllPppProfiles(c *fiber.Ctx) error {
	var profiles []models.PppProfile
	if err := db.DB.Find(&profiles).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to fetch PPP profile list")
		return respondServiceError(c, err, "PPP profile not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "PPP profile list retrieved successfully",
		Data:    profiles,
	})
}

func GetPppProfileByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP profile ID",
		})
	}

	var profile models.PppProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP profile not found",
			})
		}
		return respondServiceError(c, err, "PPP profile not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Data:    profile,
	})
}
