package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ispbilling-backend/db"
	"ispbilling-backend/http/requests"
	"ispbilling-backend/http/responses"
	"ispbilling-backend/logger"
	"ispbilling-backend/models"
	"ispbilling-backend/providers/mikrotik"
)

func CreateMikrotikSetting(c *fiber.Ctx) error {
	var req requests.CreateOrUpdateMikrotikSettingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse Mikrotik setting create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := req.Validate(); err != nil {
		logger.Logger.WithError(err).Error("Validation failed for Mikrotik setting create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Validation failed",
		})
	}

	setting := models.MikrotikSetting{
		Name:        req.Name,
		Host:        req.Host,
		Port:        req.Port,
		Username:    req.Username,
		Password:    req.Password,
		UseSSL:      req.UseSSL,
		Community:   req.Community,
		IsActive:    req.IsActive,
		Description: req.Description,
	}
	if setting.Port == 0 {
		setting.Port = 8728
	}
	if setting.Community == "" {
		setting.Community = "public"
	}

	if err := db.DB.Create(&setting).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to insert Mikrotik setting")
		return respondServiceError(c, err, "Mikrotik setting not found")
	}

	return c.Status(http.StatusCreated).JSON(responses.SuccessResponse{
		Success: true,
		Message: "Mikrotik setting created successfully",
		Data:    setting,
	})
}

func UpdateMikrotikSetting(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid Mikrotik setting ID",
		})
	}

	var req requests.CreateOrUpdateMikrotikSettingRequest
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

	var setting models.MikrotikSetting
	if err := db.DB.First(&setting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Mikrotik setting not found",
			})
		}
		return respondServiceError(c, err, "Mikrotik setting not found")
	}

	setting.Name = req.Name
	setting.Host = req.Host
	if req.Port != 0 {
		setting.Port = req.Port
	}
	setting.Username = req.Username
	setting.Password = req.Password
	setting.UseSSL = req.UseSSL
	if req.Community != "" {
		setting.Community = req.Community
	}
	setting.IsActive = req.IsActive
	setting.Description = req.Description

	if err := db.DB.Save(&setting).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to update Mikrotik setting")
		return respondServiceError(c, err, "Mikrotik setting not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Mikrotik setting updated successfully",
		Data:    setting,
	})
}

func DeleteMikrotikSetting(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid Mikrotik setting ID",
		})
	}

	var setting models.MikrotikSetting
	if err := db.DB.First(&setting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Mikrotik setting not found",
			})
		}
		return respondServiceError(c, err, "Mikrotik setting not found")
	}

	if err := db.DB.Delete(&setting).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to delete Mikrotik setting")
		return respondServiceError(c, err, "Mikrotik setting not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Mikrotik setting deleted successfully",
	})
}

func GetAllMikrotikSettings(c *fiber.Ctx) error {
	var settings []models.MikrotikSetting
	if err := db.DB.Find(&settings).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to fetch Mikrotik setting list")
		return respondServiceError(c, err, "Mikrotik setting not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Mikrotik setting list retrieved successfully",
		Data:    settings,
	})
}

// GetMikrotikHealth probes the router over SNMP and stamps the connection
// timestamps on the setting accordingly.
func GetMikrotikHealth(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid Mikrotik setting ID",
		})
	}

	var setting models.MikrotikSetting
	if err := db.DB.First(&setting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Mikrotik setting not found",
			})
		}
		return respondServiceError(c, err, "Mikrotik setting not found")
	}

	now := time.Now()
	health, err := mikrotik.ProbeHealth(mikrotik.HealthConfig{
		Host:      setting.Host,
		Community: setting.Community,
	})
	if err != nil {
		logger.Logger.WithError(err).Warnf("Health probe failed for router %s", setting.Name)
		db.DB.Model(&setting).Update("last_disconnected_at", now)
		return c.Status(http.StatusBadGateway).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Router unreachable",
		})
	}

	db.DB.Model(&setting).Update("last_connected_at", now)

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Message: "Router health retrieved successfully",
		Data:    health,
	})
}
