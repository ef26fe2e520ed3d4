package services

import (
	"context"

	"festivos/builders"
	"festivos/models"
	"festivos/types"

	"gorm.io/gorm"
)

// HolidayTypes is the content of the holiday_types table
var HolidayTypes = []models.HolidayType{
	{ID: uint(types.Fixed), Name: "Fijo"},
	{ID: uint(types.FixedMovedToMonday), Name: "Ley de Puente Festivo"},
	{ID: uint(types.EasterRelative), Name: "Basado en el domingo de pascua"},
	{ID: uint(types.EasterRelativeMovedToMonday), Name: "Basado en el domingo de pascua y Ley de Puente Festivo"},
}

// ColombiaHolidays returns the legal holidays of Colombia for countryID
func ColombiaHolidays(countryID uint) []types.HolidayRule {
	rule := func(name string) *builders.HolidayRuleBuilder {
		return builders.NewHolidayRuleBuilder(name).ForCountry(countryID)
	}
	return []types.HolidayRule{
		rule("Año nuevo").OnFixedDate(1, 1).MustBuild(),
		rule("Santos Reyes").OnFixedDate(1, 6).MovedToMonday().MustBuild(),
		rule("San José").OnFixedDate(3, 19).MovedToMonday().MustBuild(),
		rule("Jueves Santo").OnEasterOffset(-3).MustBuild(),
		rule("Viernes Santo").OnEasterOffset(-2).MustBuild(),
		rule("Domingo de Pascua").OnEasterOffset(0).MustBuild(),
		rule("Día del Trabajo").OnFixedDate(5, 1).MustBuild(),
		rule("Ascensión del Señor").OnEasterOffset(39).MovedToMonday().MustBuild(),
		rule("Corpus Christi").OnEasterOffset(60).MovedToMonday().MustBuild(),
		rule("Sagrado Corazón de Jesús").OnEasterOffset(68).MovedToMonday().MustBuild(),
		rule("San Pedro y San Pablo").OnFixedDate(6, 29).MovedToMonday().MustBuild(),
		rule("Independencia de Colombia").OnFixedDate(7, 20).MustBuild(),
		rule("Batalla de Boyacá").OnFixedDate(8, 7).MustBuild(),
		rule("Asunción de la Virgen").OnFixedDate(8, 15).MovedToMonday().MustBuild(),
		rule("Día de la Raza").OnFixedDate(10, 12).MovedToMonday().MustBuild(),
		rule("Todos los Santos").OnFixedDate(11, 1).MovedToMonday().MustBuild(),
		rule("Independencia de Cartagena").OnFixedDate(11, 11).MovedToMonday().MustBuild(),
		rule("Inmaculada Concepción").OnFixedDate(12, 8).MustBuild(),
		rule("Navidad").OnFixedDate(12, 25).MustBuild(),
	}
}

// Migrate creates or updates the schema
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(models.AllModels()...)
}

// Seed inserts the holiday types and Colombia's holidays. Running it twice is harmless.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, holidayType := range HolidayTypes {
			holidayType := holidayType
			if err := tx.Where(models.HolidayType{ID: holidayType.ID}).
				Attrs(models.HolidayType{Name: holidayType.Name}).
				FirstOrCreate(&holidayType).Error; err != nil {
				return err
			}
		}

		country := models.Country{Name: "Colombia"}
		if err := tx.Where(models.Country{Name: country.Name}).FirstOrCreate(&country).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Holiday{}).Where("country_id = ?", country.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		rows := make([]models.Holiday, 0)
		for _, rule := range ColombiaHolidays(country.ID) {
			rows = append(rows, models.HolidayFromRule(rule))
		}
		return tx.Create(&rows).Error
	})
}
