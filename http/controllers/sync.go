package controllers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/responses"
	"ispbilling-backend/services"
)

// SyncService is set at boot when an active Mikrotik setting exists. Nil
// means no router is configured and the sync endpoints answer 503.
var SyncService *services.SyncService

func SyncPppProfile(c *fiber.Ctx) error {
	if SyncService == nil {
		return c.Status(http.StatusServiceUnavailable).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Router sync is not configured",
		})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP profile ID",
		})
	}

	if err := SyncService.SyncProfile(id); err != nil {
		return respondServiceError(c, err, "PPP profile not found")
	}

	return c.JSON(responses.SuccessResponse{Success: true, Message: "PPP profile synced to router"})
}

func SyncPppSecret(c *fiber.Ctx) error {
	if SyncService == nil {
		return c.Status(http.StatusServiceUnavailable).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Router sync is not configured",
		})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Invalid PPP secret ID",
		})
	}

	if err := SyncService.SyncSecret(id); err != nil {
		return respondServiceError(c, err, "PPP secret not found")
	}

	return c.JSON(responses.SuccessResponse{Success: true, Message: "PPP secret synced to router"})
}
