package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/catalogo-api/docs"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/calculator"
	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// @title        Catalogo API
// @version      1.0
// @description  Back office del catálogo de servicios y API pública del widget de la calculadora.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	languageRepo := postgres.NewLanguageRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	languageUC := usecase.NewLanguageUseCase(languageRepo)
	currencyUC := usecase.NewCurrencyUseCase(currencyRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	settingsUC := usecase.NewSettingsUseCase(settingRepo)

	importUC := catalog.NewImportServicesUseCase(txRunner)
	exportUC := catalog.NewExportServicesUseCase(serviceRepo)

	calculatorDataUC := calculator.NewCalculatorDataUseCase(
		languageRepo, currencyRepo, unitRepo, categoryRepo, serviceRepo, settingRepo,
	)
	mailer := mail.NewSMTPMailer(cfg.SMTP)
	quotePDF := infrapdf.NewMarotoQuoteGenerator()
	sendCalculationUC := calculator.NewSendCalculationUseCase(languageRepo, mailer, quotePDF)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catalogo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LanguageUC:      languageUC,
		CurrencyUC:      currencyUC,
		UnitUC:          unitUC,
		CategoryUC:      categoryUC,
		ServiceUC:       serviceUC,
		SettingsUC:      settingsUC,
		ImportServices:  importUC,
		ExportServices:  exportUC,
		CalculatorData:  calculatorDataUC,
		SendCalculation: sendCalculationUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
