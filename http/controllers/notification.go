package controllers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/db"
	"ispbilling-backend/http/requests"
	"ispbilling-backend/http/responses"
	"ispbilling-backend/logger"
	"ispbilling-backend/services"
)

// ListNotifications returns the caller's feed (own rows plus system-wide
// ones), newest first.
func ListNotifications(c *fiber.Ctx) error {
	page, pageSize := parsePageParams(c)
	filter := services.ListNotificationsFilter{
		UserID:   currentUserID(c),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("unread"); raw != "" {
		unread, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
				Success: false,
				Message: "Invalid unread filter",
			})
		}
		filter.Unread = &unread
	}

	service := services.NewNotificationService(db.DB)
	notifications, total, err := service.List(filter)
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to list notifications")
		return respondServiceError(c, err, "Notification not found")
	}

	return c.JSON(responses.PagedResponse{
		Success:  true,
		Data:     notifications,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

func CreateNotification(c *fiber.Ctx) error {
	var req requests.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse notification create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := req.Validate(); err != nil {
		logger.Logger.WithError(err).Error("Validation failed for notification create request")
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Validation failed",
		})
	}

	service := services.NewNotificationService(db.DB)
	notification, err := service.Create(services.CreateNotificationInput{
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
		Data:    req.Data,
		Icon:    req.Icon,
		Color:   req.Color,
		UserID:  req.UserID,
	})
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to create notification")
		return respondServiceError(c, err, "Notification not found")
	}

	return c.Status(http.StatusCreated).JSON(responses.SuccessResponse{
		Success: true,
		Message: "Notification created successfully",
		Data:    notification,
	})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid notification ID",
		})
	}

	service := services.NewNotificationService(db.DB)
	if err := service.MarkAsRead(id); err != nil {
		logger.Logger.WithError(err).Warnf("Failed to mark notification %d read", id)
		return respondServiceError(c, err, "Notification not found")
	}

	return c.JSON(responses.SuccessResponse{Success: true})
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	service := services.NewNotificationService(db.DB)
	updated, err := service.MarkAllAsRead(currentUserID(c))
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to mark all notifications read")
		return respondServiceError(c, err, "Notification not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Data:    fiber.Map{"updated": updated},
	})
}

func DeleteNotification(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid notification ID",
		})
	}

	service := services.NewNotificationService(db.DB)
	if err := service.Delete(id); err != nil {
		logger.Logger.WithError(err).Warnf("Failed to delete notification %d", id)
		return respondServiceError(c, err, "Notification not found")
	}

	return c.JSON(responses.SuccessResponse{Success: true})
}

// GetUnreadNotificationCount backs the badge in the panel header.
func GetUnreadNotificationCount(c *fiber.Ctx) error {
	service := services.NewNotificationService(db.DB)
	count, err := service.UnreadCount(currentUserID(c))
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to count unread notifications")
		return respondServiceError(c, err, "Notification not found")
	}

	return c.JSON(responses.SuccessResponse{
		Success: true,
		Data:    fiber.Map{"unread": count},
	})
}
