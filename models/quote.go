package models

import "time"

// Policy status lifecycle. A quote starts CREATED and is flipped to
// CONVERTED exactly once when a bind succeeds.
const (
	PolicyStatusCreated   = "CREATED"
	PolicyStatusConverted = "CONVERTED"
)

// Max shortfall tiers accepted on quote creation.
const (
	Gap5000  = "GAP_5000"
	Gap10000 = "GAP_10000"
	Gap15000 = "GAP_15000"
	Gap20000 = "GAP_20000"
	Gap30000 = "GAP_30000"
	Gap40000 = "GAP_40000"
)

// Quote represents the quotes table
type Quote struct {
	ID              uint       `gorm:"primaryKey;column:id" json:"id"`
	QuoteRef        string     `gorm:"column:quote_ref;uniqueIndex" json:"quote_ref"`
	RegoOrVin       string     `gorm:"column:rego_or_vin" json:"rego_or_vin"`
	MaxShortfall    string     `gorm:"column:max_shortfall" json:"max_shortfall"`
	QuoteExpiryDate string     `gorm:"column:quote_expiry_date" json:"quote_expiry_date"`
	GstRate         string     `gorm:"column:gst_rate" json:"gst_rate"`
	PolicyStatus    string     `gorm:"column:policy_status" json:"policy_status"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at" json:"updated_at"`
	AgentCode       string     `gorm:"column:agent_code" json:"agent_code"`
	BrandCode       string     `gorm:"column:brand_code" json:"brand_code"`
	UserCode        string     `gorm:"column:user_code" json:"user_code"`

	// Relations (read path only; inserts set the foreign keys explicitly)
	VehicleDetail *VehicleDetail `gorm:"foreignKey:QuoteID;references:ID" json:"vehicle_detail,omitempty"`
	GapPremium    *GapPremium    `gorm:"foreignKey:QuoteID;references:ID" json:"gap_premium,omitempty"`
}

// TableName overrides the table name for Quote
func (Quote) TableName() string {
	return "quotes"
}

// VehicleDetail represents the vehicle_details table
type VehicleDetail struct {
	ID              uint    `gorm:"primaryKey;column:id" json:"id"`
	QuoteID         uint    `gorm:"column:quote_id" json:"quote_id"`
	Registration    *string `gorm:"column:registration" json:"registration"`
	Vin             string  `gorm:"column:vin" json:"vin"`
	Make            string  `gorm:"column:make" json:"make"`
	Model           string  `gorm:"column:model" json:"model"`
	Year            string  `gorm:"column:year" json:"year"`
	CcRating        string  `gorm:"column:cc_rating" json:"cc_rating"`
	FuelType        string  `gorm:"column:fuel_type" json:"fuel_type"`
	OdometerReading string  `gorm:"column:odometer_reading" json:"odometer_reading"`
	BodyColour      string  `gorm:"column:body_colour" json:"body_colour"`
	BodyStyle       string  `gorm:"column:body_style" json:"body_style"`
}

// TableName overrides the table name for VehicleDetail
func (VehicleDetail) TableName() string {
	return "vehicle_details"
}

// GapPremium represents the gap_premiums table
type GapPremium struct {
	ID              uint    `gorm:"primaryKey;column:id" json:"id"`
	QuoteID         uint    `gorm:"column:quote_id" json:"quote_id"`
	WholesaleAmount float64 `gorm:"column:wholesale_amount" json:"wholesale_amount"`
	RetailAmount    float64 `gorm:"column:retail_amount" json:"retail_amount"`
}

// TableName overrides the table name for GapPremium
func (GapPremium) TableName() string {
	return "gap_premiums"
}
