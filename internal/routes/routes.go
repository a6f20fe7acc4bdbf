// Package routes defines the API routing configuration.
// It wires repositories into services and services into handlers, and
// registers every route the frontend and capture client talk to.
package routes

import (
	"gfocus/internal/config"
	"gfocus/internal/handlers"
	"gfocus/internal/repositories"
	"gfocus/internal/repositories/cache"
	"gfocus/internal/services/ledger"
	"gfocus/internal/services/license"
	"gfocus/internal/services/notification"
	"gfocus/internal/services/reconcile"
	"gfocus/internal/services/telemetry"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, intents repositories.IntentRepository, cacheService *cache.CacheService) {
	feed := ledger.NewClient(
		config.GetEnv("SEPAY_API_URL", "https://my.sepay.vn/userapi/transactions/list"),
		config.GetEnv("SEPAY_API_KEY", ""),
	)
	notifier := notification.FromEnv()

	reconciler := reconcile.NewService(intents, feed, notifier, config.GetIntEnv("SEPAY_FETCH_LIMIT", 20))
	licenseService := license.NewService(intents)
	telemetryService := telemetry.NewService(cacheService)

	paymentHandler := handlers.NewPaymentHandler(reconciler, licenseService)
	telemetryHandler := handlers.NewTelemetryHandler(telemetryService)

	app.Get("/health", handlers.Health)

	// Purchase flow
	app.Get("/generate_transaction_note", paymentHandler.GenerateTransactionNote)
	app.Post("/confirm_transaction", paymentHandler.ConfirmTransaction)
	app.Post("/check_payment_status", paymentHandler.CheckPaymentStatus)
	app.Post("/verify_license", paymentHandler.VerifyLicense)

	// Capture client telemetry
	app.Post("/update_status", telemetryHandler.UpdateStatus)
	app.Get("/status/:code", telemetryHandler.GetStatus)
	app.Get("/proof/:code", telemetryHandler.GetProof)
}
