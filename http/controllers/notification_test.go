package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ispbilling-backend/db"
	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
	"ispbilling-backend/logger"
	"ispbilling-backend/models"
	"ispbilling-backend/services"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	if logger.Logger == nil {
		if err := logger.InitLogger(); err != nil {
			t.Fatalf("init logger: %v", err)
		}
	}

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&_foreign_keys=on", name)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(&models.User{}, &models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.DB = database

	// routes registered without the JWT middleware; scoping falls back to
	// the full feed, which is what these round-trips exercise
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Get("/notifications", controllers.ListNotifications)
	app.Post("/notifications", controllers.CreateNotification)
	app.Post("/notifications/read-all", controllers.MarkAllNotificationsRead)
	app.Post("/notifications/:id/read", controllers.MarkNotificationRead)
	app.Delete("/notifications/:id", controllers.DeleteNotification)
	return app
}

func seedNotification(t *testing.T, title string) *models.Notification {
	t.Helper()
	created, err := services.NewNotificationService(db.DB).Create(services.CreateNotificationInput{
		Type:    "payment",
		Title:   title,
		Message: "Payment received",
		Data:    map[string]interface{}{"customer_name": "Alice", "amount": 150000, "payment_method": "bank_transfer"},
	})
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	return created
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, payload
}

func TestMarkNotificationReadEndpoint(t *testing.T) {
	app := setupApp(t)
	created := seedNotification(t, "Payment Received")

	resp, payload := doRequest(t, app, http.MethodPost, fmt.Sprintf("/notifications/%d/read", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if payload["success"] != true {
		t.Fatalf("expected success true, got %v", payload)
	}

	var reloaded models.Notification
	if err := db.DB.First(&reloaded, created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.IsRead || reloaded.ReadAt == nil {
		t.Errorf("notification not marked read: %+v", reloaded)
	}

	// second call, same outcome
	resp, payload = doRequest(t, app, http.MethodPost, fmt.Sprintf("/notifications/%d/read", created.ID), nil)
	if resp.StatusCode != http.StatusOK || payload["success"] != true {
		t.Errorf("idempotent re-read failed: status=%d payload=%v", resp.StatusCode, payload)
	}
}

func TestMarkNotificationReadUnknownID(t *testing.T) {
	app := setupApp(t)

	resp, payload := doRequest(t, app, http.MethodPost, "/notifications/424242/read", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if payload["success"] != false {
		t.Errorf("expected success false, got %v", payload)
	}
}

func TestMarkAllNotificationsReadEndpoint(t *testing.T) {
	app := setupApp(t)
	for i := 0; i < 3; i++ {
		seedNotification(t, fmt.Sprintf("Payment %d", i))
	}

	resp, payload := doRequest(t, app, http.MethodPost, "/notifications/read-all", nil)
	if resp.StatusCode != http.StatusOK || payload["success"] != true {
		t.Fatalf("status=%d payload=%v", resp.StatusCode, payload)
	}
	data := payload["data"].(map[string]interface{})
	if data["updated"].(float64) != 3 {
		t.Errorf("expected 3 updated, got %v", data["updated"])
	}

	var unread int64
	if err := db.DB.Model(&models.Notification{}).Where("is_read = ?", false).Count(&unread).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if unread != 0 {
		t.Errorf("%d notifications still unread", unread)
	}
}

func TestDeleteNotificationEndpoint(t *testing.T) {
	app := setupApp(t)
	created := seedNotification(t, "Payment Received")

	resp, payload := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/notifications/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK || payload["success"] != true {
		t.Fatalf("status=%d payload=%v", resp.StatusCode, payload)
	}

	resp, payload = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/notifications/%d", created.ID), nil)
	if resp.StatusCode != http.StatusNotFound || payload["success"] != false {
		t.Errorf("second delete: status=%d payload=%v", resp.StatusCode, payload)
	}
}

func TestListNotificationsEndpoint(t *testing.T) {
	app := setupApp(t)
	seedNotification(t, "older")
	second := seedNotification(t, "newer")

	resp, payload := doRequest(t, app, http.MethodGet, "/notifications?page=1&page_size=10", nil)
	if resp.StatusCode != http.StatusOK || payload["success"] != true {
		t.Fatalf("status=%d payload=%v", resp.StatusCode, payload)
	}
	if payload["total"].(float64) != 2 {
		t.Fatalf("expected total 2, got %v", payload["total"])
	}

	rows := payload["data"].([]interface{})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	head := rows[0].(map[string]interface{})
	if uint(head["id"].(float64)) != second.ID {
		t.Errorf("newest first: expected id %d, got %v", second.ID, head["id"])
	}
	if head["is_read"] != false {
		t.Errorf("fresh notification reported read")
	}
}

func TestCreateNotificationEndpointValidation(t *testing.T) {
	app := setupApp(t)

	resp, payload := doRequest(t, app, http.MethodPost, "/notifications", map[string]interface{}{
		"type": "payment",
		// no title, no message
	})
	if resp.StatusCode != http.StatusBadRequest || payload["success"] != false {
		t.Fatalf("expected 400 with success false, got status=%d payload=%v", resp.StatusCode, payload)
	}

	resp, payload = doRequest(t, app, http.MethodPost, "/notifications", map[string]interface{}{
		"type":    "payment",
		"title":   "Payment Received",
		"message": "Payment PAY-9 verified",
		"data":    map[string]interface{}{"customer_name": "Alice"},
	})
	if resp.StatusCode != http.StatusCreated || payload["success"] != true {
		t.Fatalf("expected 201, got status=%d payload=%v", resp.StatusCode, payload)
	}
}
