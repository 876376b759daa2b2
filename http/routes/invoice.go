package routes

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
)

func InvoiceRoutes(app *fiber.App) {
	admin := app.Group("admin", middleware.JWTMiddleware())

	admin.Post("/invoices", controllers.CreateInvoice)
	admin.Get("/invoices", controllers.GetAllInvoices)
	admin.Get("/invoices/:id", controllers.GetInvoiceByID)
	admin.Delete("/invoices/:id", controllers.DeleteInvoice)
}
