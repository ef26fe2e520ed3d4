package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"festivos/errors"
	"festivos/models"
	"festivos/types"

	"gorm.io/gorm"
)

// CountryLister enumerates the countries known to a store
type CountryLister interface {
	ListCountries(ctx context.Context) ([]types.Country, error)
}

// Catalog is the read-only country lookup offered by rule stores
type Catalog interface {
	CountryLister
	GetCountry(ctx context.Context, id uint) (types.Country, error)
}

// TypeLister is implemented by stores that keep the holiday type table
type TypeLister interface {
	ListTypes(ctx context.Context) ([]models.HolidayType, error)
}

// GormRuleStore reads rules and catalog data from the database. It is read-only.
type GormRuleStore struct {
	db *gorm.DB
}

func NewGormRuleStore(db *gorm.DB) *GormRuleStore {
	return &GormRuleStore{db: db}
}

// FetchRulesForCountry returns the rules of countryID in insertion order
func (s *GormRuleStore) FetchRulesForCountry(ctx context.Context, countryID uint) ([]types.HolidayRule, error) {
	var rows []models.Holiday
	if err := s.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("id asc").
		Find(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, fmt.Sprintf("cannot load holidays of country %d", countryID), err)
	}

	rules := make([]types.HolidayRule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, row.ToRule())
	}
	return rules, nil
}

func (s *GormRuleStore) ListCountries(ctx context.Context) ([]types.Country, error) {
	var rows []models.Country
	if err := s.db.WithContext(ctx).Order("name asc").Find(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "cannot load countries", err)
	}

	countries := make([]types.Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, types.Country{ID: row.ID, Name: row.Name})
	}
	return countries, nil
}

func (s *GormRuleStore) GetCountry(ctx context.Context, id uint) (types.Country, error) {
	var row models.Country
	err := s.db.WithContext(ctx).First(&row, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return types.Country{}, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("country %d not found", id), err)
	}
	if err != nil {
		return types.Country{}, errors.NewAppError(errors.ErrCodeDBError, fmt.Sprintf("cannot load country %d", id), err)
	}
	return types.Country{ID: row.ID, Name: row.Name}, nil
}

func (s *GormRuleStore) ListTypes(ctx context.Context) ([]models.HolidayType, error) {
	var rows []models.HolidayType
	if err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "cannot load holiday types", err)
	}
	return rows, nil
}
