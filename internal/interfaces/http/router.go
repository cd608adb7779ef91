package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/calculator"
	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LanguageUC *usecase.LanguageUseCase
	CurrencyUC *usecase.CurrencyUseCase
	UnitUC     *usecase.UnitUseCase
	CategoryUC *usecase.CategoryUseCase
	ServiceUC  *usecase.ServiceUseCase
	SettingsUC *usecase.SettingsUseCase

	ImportServices  *catalog.ImportServicesUseCase
	ExportServices  *catalog.ExportServicesUseCase
	CalculatorData  *calculator.CalculatorDataUseCase
	SendCalculation *calculator.SendCalculationUseCase

	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// API pública del widget (sin auth). Se registra antes que el grupo
	// protegido para que el middleware no la alcance.
	widget := app.Group("/api/v1")
	calculatorHandler := NewCalculatorHandler(deps.CalculatorData, deps.SendCalculation)
	widget.Get("/calculator-data", calculatorHandler.Data)
	widget.Post("/send-calculation", calculatorHandler.SendCalculation)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas administrativas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Languages (protegido)
	languages := protected.Group("/languages")
	languageHandler := NewLanguageHandler(deps.LanguageUC)
	languages.Get("/", languageHandler.List)
	languages.Post("/", languageHandler.Create)
	languages.Put("/:id", languageHandler.Update)
	languages.Delete("/:id", languageHandler.Delete)

	// Currencies (protegido)
	currencies := protected.Group("/currencies")
	currencyHandler := NewCurrencyHandler(deps.CurrencyUC)
	currencies.Get("/", currencyHandler.List)
	currencies.Post("/", currencyHandler.Create)
	currencies.Put("/:id", currencyHandler.Update)
	currencies.Delete("/:id", currencyHandler.Delete)

	// Units (protegido)
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Get("/", unitHandler.List)
	units.Post("/", unitHandler.Create)
	units.Post("/delete-selected", unitHandler.DeleteSelected)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Post("/delete-selected", categoryHandler.DeleteSelected)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Services (protegido): CRUD + importación/exportación CSV
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC, deps.ImportServices, deps.ExportServices)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Post("/delete-selected", serviceHandler.DeleteSelected)
	services.Post("/import", serviceHandler.Import)
	services.Get("/export", serviceHandler.Export)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}
