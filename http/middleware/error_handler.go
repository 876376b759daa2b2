package middleware

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/responses"
	"ispbilling-backend/logger"
)

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Logger.WithError(err).Error("Unhandled error occurred")

	return c.Status(code).JSON(responses.ErrorResponse{
		Success: false,
		Message: err.Error(),
	})
}
