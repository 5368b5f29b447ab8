package models

// Request/response DTOs for the quickquote endpoints. JSON field names are
// part of the external contract and stay camelCase regardless of the
// snake_case used in storage.

// GapQuoteRequest is the body of POST /quote/create.
type GapQuoteRequest struct {
	RegoOrVin    string `json:"regoOrVin"`
	MaxShortfall string `json:"maxShortfall"`
}

// VariantDTO and RateChartDTO are optional vehicle classifiers supplied by
// a live vehicle-lookup collaborator. The static lookup never fills them.
type VariantDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type RateChartDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// VehicleDetailsDTO mirrors the vehicle profile returned to callers.
type VehicleDetailsDTO struct {
	Registration    *string        `json:"registration"`
	Vin             string         `json:"vin"`
	Make            string         `json:"make"`
	Model           string         `json:"model"`
	Year            string         `json:"year"`
	CcRating        string         `json:"ccRating"`
	FuelType        string         `json:"fuelType"`
	OdometerReading string         `json:"odometerReading"`
	BodyColour      string         `json:"bodyColour"`
	BodyStyle       string         `json:"bodyStyle"`
	Variants        []VariantDTO   `json:"variants,omitempty"`
	RateCharts      []RateChartDTO `json:"rateCharts,omitempty"`
}

// GapPremiumDTO carries the quoted premium amounts.
type GapPremiumDTO struct {
	WholesaleAmount float64 `json:"wholesaleAmount"`
	RetailAmount    float64 `json:"retailAmount"`
}

// GapQuoteResult is the quoteResponse payload of a successful creation.
type GapQuoteResult struct {
	QuoteRef        string            `json:"quoteRef"`
	QuoteExpiryDate string            `json:"quoteExpiryDate,omitempty"`
	GstRate         string            `json:"gstRate,omitempty"`
	VehicleDetails  VehicleDetailsDTO `json:"vehicleDetails"`
	GapPremium      *GapPremiumDTO    `json:"gapPremium,omitempty"`
}

// GapQuoteResponse is the full body of POST /quote/create responses.
type GapQuoteResponse struct {
	QuoteResponse *GapQuoteResult `json:"quoteResponse,omitempty"`
	Errors        []ResponseError `json:"errors"`
}

// FinanceDTO carries the finance terms of a bind request.
type FinanceDTO struct {
	Company        string `json:"company"`
	Amount         int    `json:"amount"`
	BalancePayable int    `json:"balancePayable"`
	StartDate      string `json:"startDate"`
	ContractLength int    `json:"contractLength"`
}

// ApplicantPostalAddressDTO is the applicant's postal address.
type ApplicantPostalAddressDTO struct {
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	Suburb       string  `json:"suburb"`
	City         string  `json:"city"`
	Postcode     string  `json:"postcode"`
}

// ApplicantContactDTO is the applicant's contact record.
type ApplicantContactDTO struct {
	Phone        string  `json:"phone"`
	MobileNum    *string `json:"mobileNum"`
	EmailAddress *string `json:"emailAddress"`
}

// BusinessContactPersonDTO is one contact person of a business applicant.
type BusinessContactPersonDTO struct {
	FirstName           string `json:"firstName"`
	Surname             string `json:"surname"`
	BusinessContactType string `json:"businessContactType"`
}

// BusinessApplicantDTO is the optional business applicant block.
type BusinessApplicantDTO struct {
	BusinessName           string                     `json:"businessName"`
	BusinessContactPersons []BusinessContactPersonDTO `json:"businessContactPersons,omitempty"`
}

// JointApplicantDTO is one secondary applicant.
type JointApplicantDTO struct {
	FirstName   string  `json:"firstName"`
	Surname     string  `json:"surname"`
	DateOfBirth *string `json:"dateOfBirth"`
}

// ApplicantDTO is the primary applicant graph. When a business applicant is
// present the individual fields describe its primary contact person.
type ApplicantDTO struct {
	FirstName         string                     `json:"firstName"`
	SurName           string                     `json:"surName"`
	DateOfBirth       string                     `json:"dateOfBirth"`
	PostalAddress     *ApplicantPostalAddressDTO `json:"applicantPostalAddress" binding:"required"`
	Contact           *ApplicantContactDTO       `json:"applicantContact" binding:"required"`
	BusinessApplicant *BusinessApplicantDTO      `json:"businessApplicant"`
	JointApplicants   []JointApplicantDTO        `json:"jointApplicants"`
}

// GapBindRequest is the body of POST /quote/bind.
type GapBindRequest struct {
	QuoteRef                string        `json:"quoteRef"`
	RegoOrVin               *string       `json:"regoOrVin"`
	VehicleValue            int           `json:"vehicleValue"`
	VehicleInsurer          string        `json:"vehicleInsurer"`
	FinanceDetails          *FinanceDTO   `json:"financeDetails" binding:"required"`
	RetailPremiumAdjustment *float64      `json:"retailPremiumAdjustment"`
	AgreeToDeclaration      bool          `json:"agreeToDeclaration"`
	Applicant               *ApplicantDTO `json:"applicant" binding:"required"`
	PaymentMethod           string        `json:"paymentMethod" binding:"required,oneof=FINANCED CASH_SALES_AGENT"`
	LoanContractNumber      *string       `json:"loanContractNumber"`
	ApplicantsEmail         *string       `json:"applicantsEmail"`
	VehicleDepositProvided  bool          `json:"vehicleDepositProvided"`
	ContinuePurchase        *bool         `json:"continuePurchase"`
}

// GapBindResponse is the body of POST /quote/bind responses. An empty
// errors array is the success signal; there is no success payload.
type GapBindResponse struct {
	Errors []ResponseError `json:"errors"`
}
