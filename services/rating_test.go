package services

import (
	"testing"

	"gap-quote-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatePremiumMultipliers(t *testing.T) {
	cases := []struct {
		tier       string
		multiplier float64
	}{
		{models.Gap5000, 1.0},
		{models.Gap10000, 1.5},
		{models.Gap15000, 2.0},
		{models.Gap20000, 2.5},
		{models.Gap30000, 3.0},
		{models.Gap40000, 3.5},
	}

	rater := TablePremiumRater{}
	for _, tc := range cases {
		premium, err := rater.RatePremium(tc.tier)
		require.NoError(t, err, tc.tier)
		assert.Equal(t, 180.55*tc.multiplier, premium.WholesaleAmount, tc.tier)
		assert.Equal(t, 361.10*tc.multiplier, premium.RetailAmount, tc.tier)
	}
}

func TestRatePremiumUnknownTierFallsBackToBase(t *testing.T) {
	rater := TablePremiumRater{}

	premium, err := rater.RatePremium("GAP_99999")
	require.NoError(t, err)
	assert.Equal(t, 180.55, premium.WholesaleAmount)
	assert.Equal(t, 361.10, premium.RetailAmount)
}

func TestLookupVehicleTreatsShortIdentifierAsRegistration(t *testing.T) {
	details, err := StaticVehicleLookup{}.LookupVehicle("MKD546")
	require.NoError(t, err)

	require.NotNil(t, details.Registration)
	assert.Equal(t, "MKD546", *details.Registration)
	assert.Equal(t, "MRHGK5860GP020199", details.Vin)
	assert.Equal(t, "HONDA", details.Make)
	assert.Equal(t, "JAZZ", details.Model)
}

func TestLookupVehicleTreatsLongIdentifierAsVin(t *testing.T) {
	vin := "JH4KA7561PC008269"

	details, err := StaticVehicleLookup{}.LookupVehicle(vin)
	require.NoError(t, err)

	assert.Nil(t, details.Registration)
	assert.Equal(t, vin, details.Vin)
}
