package routes

import (
	"github.com/gofiber/fiber/v2"

	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
)

func NotificationRoutes(app *fiber.App) {
	notifications := app.Group("notifications", middleware.JWTMiddleware())

	notifications.Get("/", controllers.ListNotifications)
	notifications.Post("/", controllers.CreateNotification)
	notifications.Get("/unread-count", controllers.GetUnreadNotificationCount)
	// read-all before :id/read, fiber matches in registration order
	notifications.Post("/read-all", controllers.MarkAllNotificationsRead)
	notifications.Post("/:id/read", controllers.MarkNotificationRead)
	notifications.Delete("/:id", controllers.DeleteNotification)
}
