package services

import (
	"context"
	"testing"
	"time"

	"festivos/errors"
	"festivos/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileRuleStore(t *testing.T) {
	store, err := LoadFileRuleStore("testdata/colombia.yaml")
	require.NoError(t, err)
	ctx := context.Background()

	countries, err := store.ListCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 3)
	assert.Equal(t, "Atlántida", countries[0].Name)
	assert.Equal(t, "Colombia", countries[1].Name)

	rules, err := store.FetchRulesForCountry(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rules, 19)
	assert.Equal(t, uint(1), rules[0].ID)
	assert.Equal(t, types.Fixed, rules[0].Type)
	assert.Equal(t, types.EasterRelativeMovedToMonday, rules[7].Type)
	assert.Equal(t, 39, *rules[7].EasterOffsetDays)

	ecuador, err := store.FetchRulesForCountry(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(20), ecuador[0].ID, "ids continue across countries")

	empty, err := store.FetchRulesForCountry(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFileRuleStoreMatchesSeedData(t *testing.T) {
	store, err := LoadFileRuleStore("testdata/colombia.yaml")
	require.NoError(t, err)

	fromFile := NewHolidayService(HolidayServiceOptions{Store: store})
	fromSeed, _ := colombiaService(nil)
	ctx := context.Background()

	for _, year := range []int{2019, 2024, 2031} {
		want, err := fromSeed.ListHolidays(ctx, colombia, year)
		require.NoError(t, err)
		got, err := fromFile.ListHolidays(ctx, 1, year)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].Name, got[i].Name)
			assert.Equal(t, want[i].Date, got[i].Date)
		}
	}

	ok, err := fromFile.IsHoliday(ctx, 2, types.CivilDate(2024, time.March, 29))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewFileRuleStoreRejectsBadDocuments(t *testing.T) {
	tests := map[string]string{
		"not yaml":        "countries: [",
		"unknown type":    "countries:\n  - id: 1\n    name: X\n    holidays:\n      - {name: A, type: lunar, month: 1, day: 1}\n",
		"fixed offset":    "countries:\n  - id: 1\n    name: X\n    holidays:\n      - {name: A, type: fixed, month: 1, day: 1, easterOffset: 2}\n",
		"easter no off":   "countries:\n  - id: 1\n    name: X\n    holidays:\n      - {name: A, type: easter-relative}\n",
		"easter with day": "countries:\n  - id: 1\n    name: X\n    holidays:\n      - {name: A, type: easter-relative, day: 3, easterOffset: 1}\n",
		"bad month":       "countries:\n  - id: 1\n    name: X\n    holidays:\n      - {name: A, type: fixed, month: 14, day: 1}\n",
		"duplicate":       "countries:\n  - {id: 1, name: X}\n  - {id: 1, name: Y}\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFileRuleStore([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.IsAppError(err))
		})
	}
}

func TestLoadFileRuleStoreMissingFile(t *testing.T) {
	_, err := LoadFileRuleStore("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestFileRuleStoreGetCountry(t *testing.T) {
	store, err := LoadFileRuleStore("testdata/colombia.yaml")
	require.NoError(t, err)

	country, err := store.GetCountry(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Ecuador", country.Name)

	_, err = store.GetCountry(context.Background(), 404)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDBNotFound))
}
