package calculator

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CalculatorDataUseCase arma la instantánea desnormalizada del catálogo que
// consume el widget de la calculadora: idiomas, monedas, unidades y categorías
// con sus servicios, más los valores por defecto guardados en Settings.
type CalculatorDataUseCase struct {
	languages  repository.LanguageRepository
	currencies repository.CurrencyRepository
	units      repository.UnitRepository
	categories repository.CategoryRepository
	services   repository.ServiceRepository
	settings   repository.SettingRepository
}

// NewCalculatorDataUseCase construye el caso de uso.
func NewCalculatorDataUseCase(
	languages repository.LanguageRepository,
	currencies repository.CurrencyRepository,
	units repository.UnitRepository,
	categories repository.CategoryRepository,
	services repository.ServiceRepository,
	settings repository.SettingRepository,
) *CalculatorDataUseCase {
	return &CalculatorDataUseCase{
		languages:  languages,
		currencies: currencies,
		units:      units,
		categories: categories,
		services:   services,
		settings:   settings,
	}
}

// Snapshot devuelve el catálogo completo. El campo id de idiomas y monedas
// lleva el código (es lo que el widget usa como identificador).
func (uc *CalculatorDataUseCase) Snapshot() (*dto.CalculatorDataResponse, error) {
	languages, err := uc.languages.List()
	if err != nil {
		return nil, fmt.Errorf("listar idiomas: %w", err)
	}
	currencies, err := uc.currencies.List()
	if err != nil {
		return nil, fmt.Errorf("listar monedas: %w", err)
	}
	units, err := uc.units.List()
	if err != nil {
		return nil, fmt.Errorf("listar unidades: %w", err)
	}
	categories, err := uc.categories.List()
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}

	out := &dto.CalculatorDataResponse{
		Settings:   map[string]string{},
		Languages:  make([]dto.LanguageOption, 0, len(languages)),
		Currencies: make([]dto.CurrencyOption, 0, len(currencies)),
		Units:      make([]dto.UnitOption, 0, len(units)),
		Categories: make([]dto.CategoryWithServices, 0, len(categories)),
	}
	for _, l := range languages {
		out.Languages = append(out.Languages, dto.LanguageOption{ID: l.Code, Name: l.Name})
	}
	for _, c := range currencies {
		out.Currencies = append(out.Currencies, dto.CurrencyOption{ID: c.Code, Symbol: c.Symbol, Name: c.Name})
	}
	for _, u := range units {
		out.Units = append(out.Units, dto.UnitOption{ID: u.ID, Name: u.Name, Abbreviation: u.Abbreviation})
	}
	for _, cat := range categories {
		services, err := uc.services.ListByCategory(cat.ID)
		if err != nil {
			return nil, fmt.Errorf("listar servicios de %q: %w", cat.Name, err)
		}
		group := dto.CategoryWithServices{
			ID:       cat.ID,
			Name:     cat.Name,
			Services: make([]dto.ServiceOption, 0, len(services)),
		}
		for _, svc := range services {
			var unitID *string
			if svc.UnitID != "" {
				id := svc.UnitID
				unitID = &id
			}
			group.Services = append(group.Services, dto.ServiceOption{
				ID:     svc.ID,
				Name:   svc.Name,
				Price:  svc.Price.StringFixed(2),
				UnitID: unitID,
			})
		}
		out.Categories = append(out.Categories, group)
	}

	for _, key := range []string{entity.SettingDefaultCurrencyID, entity.SettingDefaultLanguageID} {
		setting, err := uc.settings.Get(key)
		if err != nil {
			return nil, fmt.Errorf("leer setting %s: %w", key, err)
		}
		if setting != nil {
			out.Settings[key] = setting.Value
		}
	}
	return out, nil
}
