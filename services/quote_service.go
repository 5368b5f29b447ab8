package services

import (
	"fmt"
	"time"

	"gap-quote-api/config"
	"gap-quote-api/models"
	"gap-quote-api/utils"

	"gorm.io/gorm"
)

// Attribution carries the caller identification headers into persistence.
type Attribution struct {
	AgentCode string
	BrandCode string
	UserCode  string
}

// GST rate applied to every quote, percent.
const gstRate = "15"

// Quotes remain bindable for 30 days from creation.
const quoteValidityDays = 30

// refAllocationAttempts bounds reference regeneration on collision.
const refAllocationAttempts = 5

type QuoteService struct {
	db       *gorm.DB
	vehicles VehicleLookup
	rater    PremiumRater
}

func NewQuoteService(db *gorm.DB) *QuoteService {
	if db == nil {
		db = config.DB
	}
	return &QuoteService{
		db:       db,
		vehicles: StaticVehicleLookup{},
		rater:    TablePremiumRater{},
	}
}

// CreateQuote validates the request, resolves a vehicle profile, prices the
// premium and persists the quote graph in a single transaction. All
// failures come back in the response's errors array.
func (s *QuoteService) CreateQuote(req *models.GapQuoteRequest, attr Attribution) *models.GapQuoteResponse {
	regoOrVin := utils.SanitizeInput(req.RegoOrVin)
	if regoOrVin == "" {
		return &models.GapQuoteResponse{
			Errors: []models.ResponseError{
				models.ValidationError(models.CodeRegoMandatory, "Registration or VIN is mandatory", "regoOrVin"),
			},
		}
	}

	vehicle, err := s.vehicles.LookupVehicle(regoOrVin)
	if err != nil {
		return &models.GapQuoteResponse{
			Errors: []models.ResponseError{{
				Category: models.CategoryFunctional,
				Code:     models.CodeCollaborator,
				Message:  "Vehicle lookup failed: " + err.Error(),
				Field:    "regoOrVin",
			}},
		}
	}

	premium, err := s.rater.RatePremium(req.MaxShortfall)
	if err != nil {
		return &models.GapQuoteResponse{
			Errors: []models.ResponseError{{
				Category: models.CategoryFunctional,
				Code:     models.CodeCollaborator,
				Message:  "Premium rating failed: " + err.Error(),
				Field:    "maxShortfall",
			}},
		}
	}

	now := time.Now()
	expiryDate := now.AddDate(0, 0, quoteValidityDays).Format("2006-01-02")

	var quote models.Quote
	err = s.db.Transaction(func(tx *gorm.DB) error {
		quoteRef, refErr := allocateQuoteRef(tx)
		if refErr != nil {
			return refErr
		}

		quote = models.Quote{
			QuoteRef:        quoteRef,
			RegoOrVin:       regoOrVin,
			MaxShortfall:    req.MaxShortfall,
			QuoteExpiryDate: expiryDate,
			GstRate:         gstRate,
			PolicyStatus:    models.PolicyStatusCreated,
			CreatedAt:       now,
			UpdatedAt:       &now,
			AgentCode:       attr.AgentCode,
			BrandCode:       attr.BrandCode,
			UserCode:        attr.UserCode,
		}
		if err := tx.Create(&quote).Error; err != nil {
			return err
		}

		detail := models.VehicleDetail{
			QuoteID:         quote.ID,
			Registration:    vehicle.Registration,
			Vin:             vehicle.Vin,
			Make:            vehicle.Make,
			Model:           vehicle.Model,
			Year:            vehicle.Year,
			CcRating:        vehicle.CcRating,
			FuelType:        vehicle.FuelType,
			OdometerReading: vehicle.OdometerReading,
			BodyColour:      vehicle.BodyColour,
			BodyStyle:       vehicle.BodyStyle,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return err
		}

		gapPremium := models.GapPremium{
			QuoteID:         quote.ID,
			WholesaleAmount: premium.WholesaleAmount,
			RetailAmount:    premium.RetailAmount,
		}
		return tx.Create(&gapPremium).Error
	})
	if err != nil {
		return &models.GapQuoteResponse{
			Errors: []models.ResponseError{models.SystemError(err)},
		}
	}

	return &models.GapQuoteResponse{
		QuoteResponse: &models.GapQuoteResult{
			QuoteRef:        quote.QuoteRef,
			QuoteExpiryDate: quote.QuoteExpiryDate,
			GstRate:         quote.GstRate,
			VehicleDetails:  vehicle,
			GapPremium:      &premium,
		},
		Errors: []models.ResponseError{},
	}
}

// allocateQuoteRef draws random references until one is free in storage.
// The unique index on quotes.quote_ref backstops a race between two
// allocations of the same reference.
func allocateQuoteRef(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < refAllocationAttempts; attempt++ {
		ref := utils.GenerateQuoteRef()

		var count int64
		if err := tx.Model(&models.Quote{}).Where("quote_ref = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique quote reference after %d attempts", refAllocationAttempts)
}
