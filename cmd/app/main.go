package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	apmfiber "go.elastic.co/apm/module/apmfiber/v2"

	"ispbilling-backend/config"
	"ispbilling-backend/db"
	"ispbilling-backend/http/controllers"
	"ispbilling-backend/http/middleware"
	"ispbilling-backend/http/routes"
	"ispbilling-backend/logger"
	"ispbilling-backend/models"
	"ispbilling-backend/providers/mikrotik"
	"ispbilling-backend/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.InitLogger(); err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer func() {
		if f, ok := logger.Logger.Out.(*os.File); ok {
			f.Close()
		}
	}()

	os.Setenv("ELASTIC_APM_SERVER_URL", cfg.ElasticAPMServerURL)
	os.Setenv("ELASTIC_APM_SERVICE_NAME", cfg.ElasticAPMServiceName)
	os.Setenv("ELASTIC_APM_ENVIRONMENT", cfg.ElasticAPMEnvironment)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(cors.New())

	app.Use(apmfiber.Middleware())

	app.Use(fiberLogger.New(fiberLogger.Config{
		Format:     "${ip} - - [${time}] \"${method} ${path} ${protocol}\" ${status} ${latency}\n",
		TimeFormat: "02/Jan/2006:15:04:05 -0700",
	}))

	if err := db.ConnectDatabase(cfg); err != nil {
		logger.Logger.WithError(err).Fatal("Database connection failed")
	}

	routes.AuthRoutes(app)
	routes.CustomerRoutes(app)
	routes.PppProfileRoutes(app)
	routes.PppSecretRoutes(app)
	routes.InvoiceRoutes(app)
	routes.PaymentRoutes(app)
	routes.MikrotikSettingRoutes(app)
	routes.UsageLogRoutes(app)
	routes.NotificationRoutes(app)

	if router := connectRouter(); router != nil {
		defer router.Close()
		controllers.SyncService = services.NewSyncService(db.DB, router)
	}

	notifications := services.NewNotificationService(db.DB)
	billing := services.NewBillingService(db.DB, notifications, cfg.DueWarningDays, cfg.GraceDays)
	if err := billing.StartScheduler(cfg.BillingSchedule); err != nil {
		logger.Logger.WithError(err).Fatal("Billing scheduler failed to start")
	}
	defer billing.Stop()

	port := ":" + cfg.HTTPPort
	logger.Logger.Infof("Server is running on port %s", port)
	go func() {
		if err := app.Listen(port); err != nil {
			logger.Logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	waitForShutdown()
}

// connectRouter dials the first active Mikrotik setting. Nil when none is
// configured or the router is unreachable; the sync endpoints answer 503
// until the next restart.
func connectRouter() mikrotik.Client {
	var setting models.MikrotikSetting
	if err := db.DB.Where("is_active = ?", true).Order("id").First(&setting).Error; err != nil {
		logger.Logger.Info("No active Mikrotik setting, router sync disabled")
		return nil
	}
	router, err := mikrotik.Dial(setting.Host, setting.Port, setting.Username, setting.Password, setting.UseSSL)
	if err != nil {
		logger.Logger.WithError(err).Warnf("Router %s unreachable, sync disabled", setting.Name)
		return nil
	}
	logger.Logger.Infof("Connected to router %s (%s:%d)", setting.Name, setting.Host, setting.Port)
	return router
}

func waitForShutdown() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan
	logger.Logger.Info("Shutting down server...")
}
