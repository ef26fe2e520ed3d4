package services

import (
	"context"
	"os"
	"testing"
	"time"

	"festivos/errors"
	"festivos/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	return db
}

func TestGormRuleStore(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Seed(ctx, db))
	require.NoError(t, Seed(ctx, db), "seeding twice is harmless")

	store := NewGormRuleStore(db)

	countries, err := store.ListCountries(ctx)
	require.NoError(t, err)
	var colombiaID uint
	for _, c := range countries {
		if c.Name == "Colombia" {
			colombiaID = c.ID
		}
	}
	require.NotZero(t, colombiaID)

	rules, err := store.FetchRulesForCountry(ctx, colombiaID)
	require.NoError(t, err)
	require.Len(t, rules, len(ColombiaHolidays(colombiaID)))
	for i := 1; i < len(rules); i++ {
		assert.Less(t, rules[i-1].ID, rules[i].ID)
	}

	service := NewHolidayService(HolidayServiceOptions{Store: store})
	ok, err := service.IsHoliday(ctx, colombiaID, types.CivilDate(2024, time.October, 14))
	require.NoError(t, err)
	assert.True(t, ok)

	holidayTypes, err := store.ListTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, holidayTypes, 4)

	_, err = store.GetCountry(ctx, 987654321)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDBNotFound))
}
