package routes

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
)

func CustomerRoutes(app *fiber.App) {
	admin := app.Group("admin", middleware.JWTMiddleware())

	admin.Post("/customers", controllers.CreateCustomer)
	admin.Put("/customers/:id", controllers.UpdateCustomer)
	admin.Delete("/customers/:id", controllers.DeleteCustomer)
	admin.Get("/customers", controllers.GetAllCustomers)
	admin.Get("/customers/:id", controllers.GetCustomerByID)
}
