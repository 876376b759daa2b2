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

// IngestUsageLog accepts one session record from the collector, keyed by PPP
// username. Usage logs are append-only.
func IngestUsageLog(c *fiber.Ctx) error {
	var req requests.IngestUsageLogRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse usage log request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := req.Validate(); err != nil {
		logger.Logger.WithError(err).Error("Validation failed for usage log request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Validation failed",
		})
	}

	var secret models.PppSecret
	if err := db.DB.Where("username = ?", req.Username).First(&secret).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
				Success: false,
				Message: "PPP secret not found",
			})
		}
		return respondServiceError(c, err, "PPP secret not found")
	}

	log := models.UsageLog{
		PppSecretID:    secret.ID,
		CallerID:       req.CallerID,
		Uptime:         req.Uptime,
		BytesIn:        req.BytesIn,
		BytesOut:       req.BytesOut,
		IPAddress:      req.IPAddress,
		ConnectedAt:    req.ConnectedAt,
		DisconnectedAt: req.DisconnectedAt,
		SessionID:      req.SessionID,
	}

	if err := db.DB.Create(&log).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to insert usage log")
		return respondServiceError(c, err, "Usage log not found")
	}

	return c.Status(http.StatusCreated).JSON(responses.SuccessResponse{
		Success: true,
		Message: "Usage log recorded",
		Data:    log,
	})
}

// GetUsageLogs lists a secret's sessions newest first, paginated.
func GetUsageLogs(c *fiber.Ctx) error {
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

	page, pageSize := parsePageParams(c)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := db.DB.Model(&models.UsageLog{}).Where("ppp_secret_id = ?", secret.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return respondServiceError(c, err, "Usage log not found")
	}

	var logs []models.UsageLog
	if err := query.
		Order("connected_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&logs).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to fetch usage logs")
		return respondServiceError(c, err, "Usage log not found")
	}

	return c.JSON(responses.PagedResponse{
		Success:  true,
		Data:     logs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
