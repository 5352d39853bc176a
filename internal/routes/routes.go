package routes

import (
	"bdn/internal/handlers"
	"bdn/internal/middleware"
	"bdn/internal/models"
	"bdn/internal/repositories"
	"bdn/internal/services/card"
	"bdn/internal/services/currency"
	"bdn/internal/services/fee"
	"bdn/internal/services/payment"
	"bdn/internal/services/subscription"
	"bdn/internal/services/subscriptionbox"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services, and handlers onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB, converter *currency.Converter) {
	// Repositories
	txRepo := repositories.NewTransactionRepository(db)
	subRepo := repositories.NewSubscriptionRepository(db)
	boxRepo := repositories.NewSubscriptionBoxRepository(db)
	pmRepo := repositories.NewPaymentMethodRepository(db)
	productRepo := repositories.NewProductRepository(db)

	// Services
	feeCalc := fee.NewCalculator(converter)
	statusProvider := subscription.NewService(subRepo, repositories.CacheService)
	paymentSvc := payment.NewService(feeCalc, statusProvider, txRepo)
	boxSvc := subscriptionbox.NewService(feeCalc, statusProvider)
	cardSvc := card.NewService(pmRepo)

	// Handlers
	paymentHandler := handlers.NewPaymentHandler(paymentSvc, feeCalc)
	boxHandler := handlers.NewSubscriptionBoxHandler(boxSvc, boxRepo, productRepo)
	currencyHandler := handlers.NewCurrencyHandler(converter)
	cardHandler := handlers.NewCardHandler(cardSvc)
	txHandler := handlers.NewTransactionHandler(txRepo)
	bdnPlusHandler := handlers.NewBDNPlusHandler(subRepo, repositories.CacheService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	api.Get("/currency/convert", currencyHandler.Convert)
	api.Get("/currency/supported", currencyHandler.Currencies)
	api.Post("/fees/quote", paymentHandler.QuoteFees)

	authed := api.Group("", middleware.Auth)

	authed.Post("/payments/business",
		middleware.RequirePermission(models.PermissionPaymentWrite),
		paymentHandler.ProcessBusinessPayment)

	authed.Post("/cards",
		middleware.RequirePermission(models.PermissionCardWrite),
		cardHandler.AddCard)
	authed.Get("/cards", cardHandler.ListCards)

	authed.Get("/transactions", txHandler.History)
	authed.Get("/transactions/:id", txHandler.Get)
	authed.Get("/entities/:id/transactions",
		middleware.RequirePermission(models.PermissionTransactionRead),
		txHandler.EntityHistory)

	authed.Post("/bdn-plus", bdnPlusHandler.Enroll)
	authed.Delete("/bdn-plus", bdnPlusHandler.Cancel)

	authed.Post("/subscription-boxes/plans",
		middleware.RequirePermission(models.PermissionPlanWrite),
		boxHandler.CreatePlan)
	authed.Get("/subscription-boxes/plans",
		middleware.RequirePermission(models.PermissionMerchantRead),
		boxHandler.ListPlans)
	authed.Post("/subscription-boxes/quote", boxHandler.QuotePricing)
	authed.Post("/subscription-boxes",
		middleware.RequirePermission(models.PermissionBoxWrite),
		boxHandler.Subscribe)
	authed.Get("/subscription-boxes", boxHandler.ListBoxes)
	authed.Post("/subscription-boxes/:id/process",
		middleware.RequirePermission(models.PermissionBoxWrite),
		boxHandler.ProcessShipment)
}
