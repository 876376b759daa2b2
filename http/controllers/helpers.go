package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"ispbilling-backend/http/responses"
	"ispbilling-backend/services"
)

// currentUserID pulls the authenticated user id out of the JWT claims the
// middleware stored. Nil when the request carries no claims.
func currentUserID(c *fiber.Ctx) *uint {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return nil
	}
	raw, ok := claims["id"].(float64)
	if !ok {
		return nil
	}
	id := uint(raw)
	return &id
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func parsePageParams(c *fiber.Ctx) (int, int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	return page, pageSize
}

// respondServiceError maps the typed service failures onto the HTTP contract.
func respondServiceError(c *fiber.Ctx, err error, notFoundMessage string) error {
	var validationErr *services.ValidationError
	switch {
	case services.IsNotFound(err):
		return c.Status(http.StatusNotFound).JSON(responses.ErrorResponse{
			Success: false,
			Message: notFoundMessage,
		})
	case errors.Is(err, services.ErrConstraintViolation), errors.Is(err, gorm.ErrDuplicatedKey):
		return c.Status(http.StatusConflict).JSON(responses.ErrorResponse{
			Success: false,
			Message: "Conflicts with an existing record",
		})
	case errors.As(err, &validationErr):
		return c.Status(http.StatusBadRequest).JSON(responses.ErrorResponse{
			Success: false,
			Message: validationErr.Error(),
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(responses.ErrorResponse{
		Success: false,
		Message: "An unexpected error occurred",
	})
}
