package models

import "time"

// Payment methods accepted on bind.
const (
	PaymentMethodFinanced       = "FINANCED"
	PaymentMethodCashSalesAgent = "CASH_SALES_AGENT"
)

// Business contact person types.
const (
	BusinessContactPrimary = "PRIMARY"
	BusinessContactJoint   = "JOINT"
)

// BindRequest represents the bind_requests table
type BindRequest struct {
	ID                      uint      `gorm:"primaryKey;column:id" json:"id"`
	QuoteID                 uint      `gorm:"column:quote_id" json:"quote_id"`
	VehicleValue            int       `gorm:"column:vehicle_value" json:"vehicle_value"`
	VehicleInsurer          string    `gorm:"column:vehicle_insurer" json:"vehicle_insurer"`
	RetailPremiumAdjustment *float64  `gorm:"column:retail_premium_adjustment" json:"retail_premium_adjustment"`
	AgreeToDeclaration      bool      `gorm:"column:agree_to_declaration" json:"agree_to_declaration"`
	PaymentMethod           string    `gorm:"column:payment_method" json:"payment_method"`
	LoanContractNumber      *string   `gorm:"column:loan_contract_number" json:"loan_contract_number"`
	ApplicantsEmail         *string   `gorm:"column:applicants_email" json:"applicants_email"`
	VehicleDepositProvided  bool      `gorm:"column:vehicle_deposit_provided" json:"vehicle_deposit_provided"`
	ContinuePurchase        *bool     `gorm:"column:continue_purchase" json:"continue_purchase"`
	CreatedAt               time.Time `gorm:"column:created_at" json:"created_at"`
	AgentCode               string    `gorm:"column:agent_code" json:"agent_code"`
	BrandCode               string    `gorm:"column:brand_code" json:"brand_code"`
	UserCode                string    `gorm:"column:user_code" json:"user_code"`

	// Relations
	Quote         *Quote         `gorm:"foreignKey:QuoteID;references:ID" json:"quote,omitempty"`
	FinanceDetail *FinanceDetail `gorm:"foreignKey:BindRequestID;references:ID" json:"finance_detail,omitempty"`
	Applicant     *Applicant     `gorm:"foreignKey:BindRequestID;references:ID" json:"applicant,omitempty"`
}

// TableName overrides the table name for BindRequest
func (BindRequest) TableName() string {
	return "bind_requests"
}

// FinanceDetail represents the finance_details table
type FinanceDetail struct {
	ID             uint   `gorm:"primaryKey;column:id" json:"id"`
	BindRequestID  uint   `gorm:"column:bind_request_id" json:"bind_request_id"`
	Company        string `gorm:"column:company" json:"company"`
	Amount         int    `gorm:"column:amount" json:"amount"`
	BalancePayable int    `gorm:"column:balance_payable" json:"balance_payable"`
	StartDate      string `gorm:"column:start_date" json:"start_date"`
	ContractLength int    `gorm:"column:contract_length" json:"contract_length"`
}

// TableName overrides the table name for FinanceDetail
func (FinanceDetail) TableName() string {
	return "finance_details"
}

// Applicant represents the applicants table
type Applicant struct {
	ID            uint   `gorm:"primaryKey;column:id" json:"id"`
	BindRequestID uint   `gorm:"column:bind_request_id" json:"bind_request_id"`
	FirstName     string `gorm:"column:first_name" json:"first_name"`
	SurName       string `gorm:"column:sur_name" json:"sur_name"`
	DateOfBirth   string `gorm:"column:date_of_birth" json:"date_of_birth"`

	// Relations
	PostalAddress     *ApplicantPostalAddress `gorm:"foreignKey:ApplicantID;references:ID" json:"postal_address,omitempty"`
	Contact           *ApplicantContact       `gorm:"foreignKey:ApplicantID;references:ID" json:"contact,omitempty"`
	BusinessApplicant *BusinessApplicant      `gorm:"foreignKey:ApplicantID;references:ID" json:"business_applicant,omitempty"`
	JointApplicants   []JointApplicant        `gorm:"foreignKey:ApplicantID;references:ID" json:"joint_applicants,omitempty"`
}

// TableName overrides the table name for Applicant
func (Applicant) TableName() string {
	return "applicants"
}

// ApplicantPostalAddress represents the applicant_postal_addresses table
type ApplicantPostalAddress struct {
	ID           uint    `gorm:"primaryKey;column:id" json:"id"`
	ApplicantID  uint    `gorm:"column:applicant_id" json:"applicant_id"`
	AddressLine1 string  `gorm:"column:address_line1" json:"address_line1"`
	AddressLine2 *string `gorm:"column:address_line2" json:"address_line2"`
	Suburb       string  `gorm:"column:suburb" json:"suburb"`
	City         string  `gorm:"column:city" json:"city"`
	Postcode     string  `gorm:"column:postcode" json:"postcode"`
}

// TableName overrides the table name for ApplicantPostalAddress
func (ApplicantPostalAddress) TableName() string {
	return "applicant_postal_addresses"
}

// ApplicantContact represents the applicant_contacts table
type ApplicantContact struct {
	ID           uint    `gorm:"primaryKey;column:id" json:"id"`
	ApplicantID  uint    `gorm:"column:applicant_id" json:"applicant_id"`
	Phone        string  `gorm:"column:phone" json:"phone"`
	MobileNum    *string `gorm:"column:mobile_num" json:"mobile_num"`
	EmailAddress *string `gorm:"column:email_address" json:"email_address"`
}

// TableName overrides the table name for ApplicantContact
func (ApplicantContact) TableName() string {
	return "applicant_contacts"
}

// BusinessApplicant represents the business_applicants table
type BusinessApplicant struct {
	ID           uint   `gorm:"primaryKey;column:id" json:"id"`
	ApplicantID  uint   `gorm:"column:applicant_id" json:"applicant_id"`
	BusinessName string `gorm:"column:business_name" json:"business_name"`

	// Relations
	ContactPersons []BusinessContactPerson `gorm:"foreignKey:BusinessApplicantID;references:ID" json:"contact_persons,omitempty"`
}

// TableName overrides the table name for BusinessApplicant
func (BusinessApplicant) TableName() string {
	return "business_applicants"
}

// BusinessContactPerson represents the business_contact_persons table
type BusinessContactPerson struct {
	ID                  uint   `gorm:"primaryKey;column:id" json:"id"`
	BusinessApplicantID uint   `gorm:"column:business_applicant_id" json:"business_applicant_id"`
	FirstName           string `gorm:"column:first_name" json:"first_name"`
	Surname             string `gorm:"column:surname" json:"surname"`
	BusinessContactType string `gorm:"column:business_contact_type" json:"business_contact_type"`
}

// TableName overrides the table name for BusinessContactPerson
func (BusinessContactPerson) TableName() string {
	return "business_contact_persons"
}

// JointApplicant represents the joint_applicants table
type JointApplicant struct {
	ID          uint    `gorm:"primaryKey;column:id" json:"id"`
	ApplicantID uint    `gorm:"column:applicant_id" json:"applicant_id"`
	FirstName   string  `gorm:"column:first_name" json:"first_name"`
	Surname     string  `gorm:"column:surname" json:"surname"`
	DateOfBirth *string `gorm:"column:date_of_birth" json:"date_of_birth"`
}

// TableName overrides the table name for JointApplicant
func (JointApplicant) TableName() string {
	return "joint_applicants"
}
