package routes

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
)

func MikrotikSettingRoutes(app *fiber.App) {
	admin := app.Group("admin", middleware.JWTMiddleware())

	admin.Post("/mikrotik-settings", controllers.CreateMikrotikSetting)
	admin.Put("/mikrotik-settings/:id", controllers.UpdateMikrotikSetting)
	admin.Delete("/mikrotik-settings/:id", controllers.DeleteMikrotikSetting)
	admin.Get("/mikrotik-settings", controllers.GetAllMikrotikSettings)
	admin.Get("/mikrotik-settings/:id/health", controllers.GetMikrotikHealth)
}
