package routes

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/controllers"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("auth")

	auth.Post("/login", controllers.Login)
	auth.Post("/register", controllers.Register)
}
