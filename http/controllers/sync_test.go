package controllers_test

import (
	"fmt"
	"net/http"
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
	"ispbilling-backend/providers/mikrotik"
	"ispbilling-backend/services"
)

type stubRouter struct {
	nextID int
}

func (s *stubRouter) EnsureProfile(mikrotik.ProfileSync) (string, error) {
	s.nextID++
	return fmt.Sprintf("*%X", s.nextID), nil
}

func (s *stubRouter) EnsureSecret(mikrotik.SecretSync) (string, error) {
	s.nextID++
	return fmt.Sprintf("*%X", s.nextID), nil
}

func (s *stubRouter) RemoveProfile(string) error { return nil }
func (s *stubRouter) RemoveSecret(string) error  { return nil }
func (s *stubRouter) Close() error               { return nil }

func setupSyncApp(t *testing.T) *fiber.App {
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

	if err := database.AutoMigrate(&models.Customer{}, &models.PppProfile{}, &models.PppSecret{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.DB = database
	controllers.SyncService = services.NewSyncService(database, &stubRouter{})
	t.Cleanup(func() { controllers.SyncService = nil })

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Post("/admin/ppp-profiles/:id/sync", controllers.SyncPppProfile)
	app.Post("/admin/ppp-secrets/:id/sync", controllers.SyncPppSecret)
	return app
}

func TestSyncPppProfileEndpoint(t *testing.T) {
	app := setupSyncApp(t)

	profile := models.PppProfile{Name: "fiber-200", AutoSync: true}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	resp, body := doRequest(t, app, http.MethodPost, fmt.Sprintf("/admin/ppp-profiles/%d/sync", profile.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}

	var reloaded models.PppProfile
	if err := db.DB.First(&reloaded, profile.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.MikrotikID == "" {
		t.Fatal("sync endpoint did not store the remote id")
	}
}

func TestSyncPppSecretEndpoint(t *testing.T) {
	app := setupSyncApp(t)

	profile := models.PppProfile{Name: "fiber-300", AutoSync: true}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	secret := models.PppSecret{Username: "dave", Password: "pw", PppProfileID: profile.ID, AutoSync: true, IsActive: true}
	if err := db.DB.Create(&secret).Error; err != nil {
		t.Fatalf("seed secret: %v", err)
	}

	resp, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/admin/ppp-secrets/%d/sync", secret.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var reloaded models.PppSecret
	if err := db.DB.First(&reloaded, secret.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.MikrotikID == "" {
		t.Fatal("sync endpoint did not store the remote id")
	}
}

func TestSyncPppProfileEndpointNotFound(t *testing.T) {
	app := setupSyncApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/admin/ppp-profiles/999/sync", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["success"] != false {
		t.Fatalf("expected failure envelope, got %v", body)
	}
}

func TestSyncEndpointsWithoutRouter(t *testing.T) {
	app := setupSyncApp(t)
	controllers.SyncService = nil

	resp, body := doRequest(t, app, http.MethodPost, "/admin/ppp-profiles/1/sync", nil)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
	if body["success"] != false {
		t.Fatalf("expected failure envelope, got %v", body)
	}
}
