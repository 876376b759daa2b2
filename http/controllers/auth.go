package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ispbilling-backend/config"
	"ispbilling-backend/db"
	"ispbilling-backend/http/requests"
	"ispbilling-backend/logger"
	"ispbilling-backend/models"
)

func Login(c *fiber.Ctx) error {
	loginReq := new(requests.LoginRequest)
	if err := c.BodyParser(loginReq); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse login request")
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if err := loginReq.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	var user models.User
	if err := db.DB.Where("username = ?", loginReq.Username).First(&user).Error; err != nil {
		logger.Logger.WithError(err).Warn("User not found")
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginReq.Password)); err != nil {
		logger.Logger.Warn("Invalid password")
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	cfg, _ := config.LoadConfig()
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = user.ID
	claims["username"] = user.Username
	claims["exp"] = time.Now().Add(time.Hour * 2).Unix()

	tokenString, err := token.SignedString([]byte(cfg.JwtSecretKey))
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to generate token")
		return fiber.NewError(fiber.StatusInternalServerError, "Could not login")
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}

func Register(c *fiber.Ctx) error {
	req := new(requests.CreateUserRequest)
	if err := c.BodyParser(req); err != nil {
		logger.Logger.WithError(err).Error("Failed to parse register request")
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if err := req.Validate(); err != nil {
		logger.Logger.WithError(err).Error("Validation failed for register request")
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	var existing models.User
	if err := db.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err != nil && err != gorm.ErrRecordNotFound {
		logger.Logger.WithError(err).Error("Failed to check existing user")
		return fiber.NewError(fiber.StatusInternalServerError, "An unexpected error occurred")
	}
	if existing.ID != 0 {
		return fiber.NewError(fiber.StatusConflict, "User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to hash password")
		return fiber.NewError(fiber.StatusInternalServerError, "An unexpected error occurred")
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashed),
		FullName: req.FullName,
		Email:    req.Email,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		logger.Logger.WithError(err).Error("Failed to create user")
		return fiber.NewError(fiber.StatusInternalServerError, "An unexpected error occurred")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
	})
}
