package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// SettingsUseCase lectura y guardado de los valores por defecto del widget
// (idioma y moneda), almacenados como pares clave/valor.
type SettingsUseCase struct {
	repo repository.SettingRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve los valores por defecto actuales; vacíos si nunca se guardaron.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	out := &dto.SettingsResponse{}
	if s, err := uc.repo.Get(entity.SettingDefaultLanguageID); err != nil {
		return nil, err
	} else if s != nil {
		out.DefaultLanguageID = s.Value
	}
	if s, err := uc.repo.Get(entity.SettingDefaultCurrencyID); err != nil {
		return nil, err
	} else if s != nil {
		out.DefaultCurrencyID = s.Value
	}
	return out, nil
}

// Update guarda ambos valores por defecto (upsert de las dos claves).
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if err := uc.repo.Upsert(&entity.Setting{Key: entity.SettingDefaultLanguageID, Value: in.DefaultLanguageID}); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(&entity.Setting{Key: entity.SettingDefaultCurrencyID, Value: in.DefaultCurrencyID}); err != nil {
		return nil, err
	}
	return uc.Get()
}
