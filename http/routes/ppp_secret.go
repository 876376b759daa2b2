package routes

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
)

func PppSecretRoutes(app *fiber.App) {
	admin := app.Group("admin", middleware.JWTMiddleware())

	admin.Post("/ppp-secrets", controllers.CreatePppSecret)
	admin.Put("/ppp-secrets/:id", controllers.UpdatePppSecret)
	admin.Post("/ppp-secrets/:id/change-profile", controllers.ChangePppSecretProfile)
	admin.Post("/ppp-secrets/:id/sync", controllers.SyncPppSecret)
	admin.Delete("/ppp-secrets/:id", controllers.DeletePppSecret)
	admin.Get("/ppp-secrets", controllers.GetAllPppSecrets)
	admin.Get("/ppp-secrets/:id", controllers.GetPppSecretByID)
	admin.Get("/ppp-secrets/:id/usage-logs", controllers.GetUsageLogs)
}
