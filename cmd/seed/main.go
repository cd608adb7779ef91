// seed sincroniza los datos por defecto del catálogo (idiomas, monedas y
// unidades de medida) sin tocar los datos ya existentes, y opcionalmente crea
// un usuario administrador.
//
// Uso: go run ./cmd/seed [-admin-user nombre -admin-password clave]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

var defaultLanguages = []entity.Language{
	{Code: "en", Name: "English"},
	{Code: "ru", Name: "Russian"},
	{Code: "pl", Name: "Polish"},
	{Code: "uk", Name: "Ukrainian"},
}

var defaultCurrencies = []entity.Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł"},
}

var defaultUnits = []entity.UnitOfMeasurement{
	{Name: "Kilogram", Abbreviation: "kg"},
	{Name: "Piece", Abbreviation: "pc"},
}

func main() {
	adminUser := flag.String("admin-user", "", "nombre del usuario administrador a crear (opcional)")
	adminPassword := flag.String("admin-password", "", "contraseña del usuario administrador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	languageRepo := postgres.NewLanguageRepository(pool)
	for _, lang := range defaultLanguages {
		existing, err := languageRepo.GetByCode(lang.Code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Consultar idioma %s: %v\n", lang.Code, err)
			os.Exit(1)
		}
		if existing != nil {
			continue
		}
		lang.ID = uuid.New().String()
		if err := languageRepo.Create(&lang); err != nil {
			fmt.Fprintf(os.Stderr, "Crear idioma %s: %v\n", lang.Code, err)
			os.Exit(1)
		}
		fmt.Printf("Idioma creado: %s (%s)\n", lang.Name, lang.Code)
	}

	currencyRepo := postgres.NewCurrencyRepository(pool)
	for _, cur := range defaultCurrencies {
		existing, err := currencyRepo.GetByCode(cur.Code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Consultar moneda %s: %v\n", cur.Code, err)
			os.Exit(1)
		}
		if existing != nil {
			continue
		}
		cur.ID = uuid.New().String()
		if err := currencyRepo.Create(&cur); err != nil {
			fmt.Fprintf(os.Stderr, "Crear moneda %s: %v\n", cur.Code, err)
			os.Exit(1)
		}
		fmt.Printf("Moneda creada: %s (%s)\n", cur.Name, cur.Code)
	}

	unitRepo := postgres.NewUnitRepository(pool)
	for _, unit := range defaultUnits {
		existing, err := unitRepo.GetByAbbreviationFold(unit.Abbreviation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Consultar unidad %s: %v\n", unit.Abbreviation, err)
			os.Exit(1)
		}
		if existing != nil {
			continue
		}
		unit.ID = uuid.New().String()
		if err := unitRepo.Create(&unit); err != nil {
			fmt.Fprintf(os.Stderr, "Crear unidad %s: %v\n", unit.Abbreviation, err)
			os.Exit(1)
		}
		fmt.Printf("Unidad creada: %s (%s)\n", unit.Name, unit.Abbreviation)
	}

	if *adminUser != "" {
		if *adminPassword == "" {
			fmt.Fprintln(os.Stderr, "-admin-password es requerido junto con -admin-user")
			os.Exit(1)
		}
		user := &entity.User{ID: uuid.New().String(), Username: *adminUser}
		if err := user.SetPassword(*adminPassword); err != nil {
			fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
			os.Exit(1)
		}
		userRepo := postgres.NewUserRepository(pool)
		if err := userRepo.Create(user); err != nil {
			if err == domain.ErrDuplicate {
				fmt.Printf("Usuario %s ya existe, se omite\n", *adminUser)
			} else {
				fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Usuario administrador creado: %s\n", *adminUser)
		}
	}

	fmt.Println("Datos por defecto sincronizados")
}
