package routes

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
)

func PppProfileRoutes(app *fiber.App) {
	admin := app.Group("admin", middleware.JWTMiddleware())

	admin.Post("/ppp-profiles", controllers.CreatePppProfile)
	admin.Post("/ppp-profiles/:id/sync", controllers.SyncPppProfile)
	admin.Put("/ppp-profiles/:id", controllers.UpdatePppProfile)
	admin.Delete("/ppp-profiles/:id", controllers.DeletePppProfile)
	admin.Get("/ppp-profiles", controllers.GetAllPppProfiles)
	admin.Get("/ppp-profiles/:id", controllers.GetPppProfileByID)
}
