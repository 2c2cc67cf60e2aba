package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/securebank/internal/config"
	"github.com/example/securebank/internal/handlers"
	"github.com/example/securebank/internal/middleware"
	"github.com/example/securebank/internal/services"
	"github.com/example/securebank/internal/storage"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, docs storage.DocumentStore) {
	clock := services.SystemClock{}

	identityService := services.NewIdentityService(db, clock)
	policyService := services.NewPolicyService(db, clock)
	claimService := services.NewClaimService(db, docs, clock)
	reportService := services.NewReportService(db, clock)

	authHandler := handlers.NewAuthHandler(identityService, cfg)
	schemeHandler := handlers.NewSchemeHandler(db)
	policyHandler := handlers.NewPolicyHandler(policyService)
	claimHandler := handlers.NewClaimHandler(claimService)
	reportHandler := handlers.NewReportHandler(reportService)
	profileHandler := handlers.NewProfileHandler(db)
	biometricHandler := handlers.NewBiometricHandler(services.StubVerifier{})

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Catalog routes
	schemes := api.Group("/schemes")
	schemes.Get("/", schemeHandler.ListSchemes)
	schemes.Get("/:id", schemeHandler.GetScheme)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Post("/policies", policyHandler.Apply)
	protected.Get("/policies", policyHandler.ListPolicies)
	protected.Post("/policies/:id/withdraw", policyHandler.Withdraw)

	protected.Post("/claims", claimHandler.FileClaim)
	protected.Get("/claims", claimHandler.ListClaims)

	protected.Post("/reports", reportHandler.SubmitReport)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)

	protected.Post("/biometric/proximity", biometricHandler.VerifyProximity)
	protected.Post("/biometric/retina", biometricHandler.VerifyRetina)
}
