package services

import "gap-quote-api/models"

// VehicleLookup resolves a vehicle profile from a registration plate or
// VIN. The production implementation calls the vehicle data provider; the
// static one below stands in until that integration lands.
type VehicleLookup interface {
	LookupVehicle(regoOrVin string) (models.VehicleDetailsDTO, error)
}

// PremiumRater prices a GAP premium for a shortfall tier.
type PremiumRater interface {
	RatePremium(maxShortfall string) (models.GapPremiumDTO, error)
}

// StaticVehicleLookup returns a canned profile. Short identifiers are
// treated as registrations and mapped to a known VIN; anything longer is
// assumed to already be a VIN.
type StaticVehicleLookup struct{}

func (StaticVehicleLookup) LookupVehicle(regoOrVin string) (models.VehicleDetailsDTO, error) {
	details := models.VehicleDetailsDTO{
		Vin:             regoOrVin,
		Make:            "HONDA",
		Model:           "JAZZ",
		Year:            "2015",
		CcRating:        "1497",
		FuelType:        "Petrol",
		OdometerReading: "89655",
		BodyColour:      "RED",
		BodyStyle:       "Hatchback",
	}
	if len(regoOrVin) < 10 {
		rego := "MKD546"
		details.Registration = &rego
		details.Vin = "MRHGK5860GP020199"
	}
	return details, nil
}

// Base premium amounts for the lowest tier; higher tiers scale linearly.
const (
	baseWholesaleAmount = 180.55
	baseRetailAmount    = 361.10
)

var shortfallMultipliers = map[string]float64{
	models.Gap5000:  1.0,
	models.Gap10000: 1.5,
	models.Gap15000: 2.0,
	models.Gap20000: 2.5,
	models.Gap30000: 3.0,
	models.Gap40000: 3.5,
}

// TablePremiumRater prices premiums from a fixed multiplier table. An
// unrecognized tier falls back to the base multiplier of 1.0.
type TablePremiumRater struct{}

func (TablePremiumRater) RatePremium(maxShortfall string) (models.GapPremiumDTO, error) {
	multiplier, ok := shortfallMultipliers[maxShortfall]
	if !ok {
		multiplier = 1.0
	}
	return models.GapPremiumDTO{
		WholesaleAmount: baseWholesaleAmount * multiplier,
		RetailAmount:    baseRetailAmount * multiplier,
	}, nil
}
