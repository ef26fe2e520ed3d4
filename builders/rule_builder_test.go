package builders

import (
	"testing"

	"festivos/errors"
	"festivos/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayRuleBuilder(t *testing.T) {
	rule, err := NewHolidayRuleBuilder("Día de la Raza").WithID(14).ForCountry(1).OnFixedDate(10, 12).MovedToMonday().Build()
	require.NoError(t, err)
	assert.Equal(t, types.FixedMovedToMonday, rule.Type)
	assert.Equal(t, uint(14), rule.ID)
	assert.Equal(t, uint(1), rule.CountryID)
	assert.Equal(t, 10, rule.Month)
	assert.Equal(t, 12, rule.Day)
	assert.Nil(t, rule.EasterOffsetDays)

	rule, err = NewHolidayRuleBuilder("Ascensión del Señor").MovedToMonday().OnEasterOffset(39).Build()
	require.NoError(t, err)
	assert.Equal(t, types.EasterRelativeMovedToMonday, rule.Type)
	assert.Equal(t, 39, *rule.EasterOffsetDays)
	assert.Zero(t, rule.Month)
}

func TestHolidayRuleBuilderLastAnchorWins(t *testing.T) {
	rule := NewHolidayRuleBuilder("x").OnEasterOffset(1).OnFixedDate(5, 1).MustBuild()
	assert.Equal(t, types.Fixed, rule.Type)
	assert.Nil(t, rule.EasterOffsetDays)
}

func TestHolidayRuleBuilderRejectsInvalid(t *testing.T) {
	_, err := NewHolidayRuleBuilder("no anchor").Build()
	assert.ErrorIs(t, err, errors.ErrInvalidRule)

	_, err = NewHolidayRuleBuilder("").OnFixedDate(1, 1).Build()
	assert.ErrorIs(t, err, errors.ErrInvalidRule)

	assert.Panics(t, func() {
		NewHolidayRuleBuilder("bad").OnFixedDate(13, 1).MustBuild()
	})
}
