package memory

import (
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ── Languages ─────────────────────────────────────────────────────────────────

type languageRepo Store

func (r *languageRepo) Create(language *entity.Language) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.languages {
		if l.Code == language.Code {
			return domain.ErrDuplicate
		}
	}
	clone := *language
	s.languages = append(s.languages, &clone)
	return nil
}

func (r *languageRepo) GetByID(id string) (*entity.Language, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.languages {
		if l.ID == id {
			clone := *l
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *languageRepo) GetByCode(code string) (*entity.Language, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.languages {
		if l.Code == code {
			clone := *l
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *languageRepo) List() ([]*entity.Language, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Language, 0, len(s.languages))
	for _, l := range s.languages {
		clone := *l
		out = append(out, &clone)
	}
	return out, nil
}

func (r *languageRepo) Update(language *entity.Language) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.languages {
		if l.ID == language.ID {
			clone := *language
			s.languages[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *languageRepo) Delete(id string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.languages {
		if l.ID == id {
			s.languages = append(s.languages[:i], s.languages[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Currencies ────────────────────────────────────────────────────────────────

type currencyRepo Store

func (r *currencyRepo) Create(currency *entity.Currency) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.currencies {
		if c.Code == currency.Code {
			return domain.ErrDuplicate
		}
	}
	clone := *currency
	s.currencies = append(s.currencies, &clone)
	return nil
}

func (r *currencyRepo) GetByID(id string) (*entity.Currency, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.currencies {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *currencyRepo) GetByCode(code string) (*entity.Currency, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.currencies {
		if c.Code == code {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *currencyRepo) List() ([]*entity.Currency, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *currencyRepo) Update(currency *entity.Currency) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.currencies {
		if c.ID == currency.ID {
			clone := *currency
			s.currencies[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *currencyRepo) Delete(id string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.currencies {
		if c.ID == id {
			s.currencies = append(s.currencies[:i], s.currencies[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Units ─────────────────────────────────────────────────────────────────────

type unitRepo Store

func (r *unitRepo) Create(unit *entity.UnitOfMeasurement) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.units {
		if foldEqual(u.Abbreviation, unit.Abbreviation) {
			return domain.ErrDuplicate
		}
	}
	clone := *unit
	s.units = append(s.units, &clone)
	return nil
}

func (r *unitRepo) GetByID(id string) (*entity.UnitOfMeasurement, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.units {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *unitRepo) GetByAbbreviationFold(abbreviation string) (*entity.UnitOfMeasurement, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.units {
		if foldEqual(u.Abbreviation, abbreviation) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *unitRepo) List() ([]*entity.UnitOfMeasurement, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.UnitOfMeasurement, 0, len(s.units))
	for _, u := range s.units {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *unitRepo) Update(unit *entity.UnitOfMeasurement) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.units {
		if u.ID == unit.ID {
			clone := *unit
			s.units[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *unitRepo) Delete(id string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.units {
		if u.ID == id {
			s.units = append(s.units[:i], s.units[i+1:]...)
			for _, svc := range s.services {
				if svc.UnitID == id {
					svc.UnitID = ""
				}
			}
			return nil
		}
	}
	return nil
}

// ── Categories ────────────────────────────────────────────────────────────────

type categoryRepo Store

func (r *categoryRepo) Create(category *entity.Category) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if foldEqual(c.Name, category.Name) {
			return domain.ErrDuplicate
		}
	}
	clone := *category
	s.categories = append(s.categories, &clone)
	return nil
}

func (r *categoryRepo) GetByID(id string) (*entity.Category, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) GetByNameFold(name string) (*entity.Category, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if foldEqual(c.Name, name) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) List() ([]*entity.Category, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Category, 0, len(s.categories))
	for _, c := range s.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *categoryRepo) Update(category *entity.Category) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c.ID == category.ID {
			clone := *category
			s.categories[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *categoryRepo) Delete(id string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			for _, svc := range s.services {
				if svc.CategoryID == id {
					svc.CategoryID = ""
				}
			}
			return nil
		}
	}
	return nil
}

// ── Services ──────────────────────────────────────────────────────────────────

type serviceRepo Store

func (r *serviceRepo) Create(service *entity.Service) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if foldEqual(svc.Name, service.Name) {
			return domain.ErrDuplicate
		}
	}
	clone := *service
	s.services = append(s.services, &clone)
	return nil
}

func (r *serviceRepo) GetByID(id string) (*entity.Service, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.ID == id {
			clone := *svc
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *serviceRepo) GetByNameFold(name string) (*entity.Service, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if foldEqual(svc.Name, name) {
			clone := *svc
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *serviceRepo) List() ([]*entity.Service, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Service, 0, len(s.services))
	for _, svc := range s.services {
		clone := *svc
		out = append(out, &clone)
	}
	return out, nil
}

func (r *serviceRepo) ListWithRelations() ([]*entity.ServiceWithRelations, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.ServiceWithRelations, 0, len(s.services))
	for _, svc := range s.services {
		row := &entity.ServiceWithRelations{Service: *svc}
		for _, c := range s.categories {
			if c.ID == svc.CategoryID {
				row.CategoryName = c.Name
				break
			}
		}
		for _, u := range s.units {
			if u.ID == svc.UnitID {
				row.UnitAbbreviation = u.Abbreviation
				break
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *serviceRepo) ListByCategory(categoryID string) ([]*entity.Service, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Service
	for _, svc := range s.services {
		if svc.CategoryID == categoryID {
			clone := *svc
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *serviceRepo) Update(service *entity.Service) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == service.ID {
			clone := *service
			s.services[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *serviceRepo) Delete(id string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Settings ──────────────────────────────────────────────────────────────────

type settingRepo Store

func (r *settingRepo) Get(key string) (*entity.Setting, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.settings[key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{Key: key, Value: value}, nil
}

func (r *settingRepo) Upsert(setting *entity.Setting) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[setting.Key] = setting.Value
	return nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

type userRepo Store

func (r *userRepo) Create(user *entity.User) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

func (r *userRepo) GetByUsername(username string) (*entity.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}
