package routes

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
)

func PaymentRoutes(app *fiber.App) {
	admin := app.Group("admin", middleware.JWTMiddleware())

	admin.Post("/payments", controllers.CreatePayment)
	admin.Post("/payments/:id/verify", controllers.VerifyPayment)
	admin.Post("/payments/:id/reject", controllers.RejectPayment)
	admin.Get("/payments", controllers.GetAllPayments)
	admin.Delete("/payments/:id", controllers.DeletePayment)
}
