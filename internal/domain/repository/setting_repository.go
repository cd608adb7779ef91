package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// SettingRepository define el puerto de persistencia para Setting (DIP).
type SettingRepository interface {
	Get(key string) (*entity.Setting, error)
	Upsert(setting *entity.Setting) error
}
