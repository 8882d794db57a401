package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPreferences_Normalize(t *testing.T) {
	prefs := UserPreferences{
		Country:   "  Japan ",
		Interests: []Interest{InterestTech, InterestMoney, InterestTech},
	}.Normalize()

	assert.Equal(t, "Japan", prefs.Country)
	assert.Equal(t, []Interest{InterestTech, InterestMoney}, prefs.Interests)
}

func TestUserPreferences_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		prefs := UserPreferences{
			Country:       "Japan",
			CareerField:   CareerFinance,
			Interests:     []Interest{InterestMoney},
			RiskTolerance: RiskToleranceLow,
		}
		assert.NoError(t, prefs.Validate())
	})

	t.Run("every_bad_field_reported", func(t *testing.T) {
		prefs := UserPreferences{
			CareerField:   "astronaut",
			Interests:     []Interest{InterestMoney, "sports"},
			RiskTolerance: "extreme",
		}

		err := prefs.Validate()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPreferences))
		assert.Contains(t, err.Error(), "astronaut")
		assert.Contains(t, err.Error(), "sports")
		assert.Contains(t, err.Error(), "extreme")
	})
}
