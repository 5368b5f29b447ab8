package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gap-quote-api/config"
	"gap-quote-api/models"
	"gap-quote-api/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errBindRejected forces a rollback when the collected validation or
// business errors should be returned instead of a system error.
var errBindRejected = errors.New("bind rejected")

type BindService struct {
	db       *gorm.DB
	sendMail func(to []string, subject, html string) error
}

func NewBindService(db *gorm.DB) *BindService {
	if db == nil {
		db = config.DB
	}
	return &BindService{db: db, sendMail: config.SendMail}
}

// BindQuote converts a previously issued quote into a bound policy. The
// quote row is locked for the duration of the transaction so two racing
// binds on the same reference serialize; the loser sees the status flip
// and is rejected.
func (s *BindService) BindQuote(req *models.GapBindRequest, attr Attribution) *models.GapBindResponse {
	quoteRef := utils.SanitizeInput(req.QuoteRef)
	if quoteRef == "" {
		return &models.GapBindResponse{
			Errors: []models.ResponseError{
				models.ValidationError(models.CodeQuoteRefMandatory, "Quote reference is mandatory", "quoteRef"),
			},
		}
	}

	var collected []models.ResponseError

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quote models.Quote
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("quote_ref = ?", quoteRef).
			First(&quote).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			collected = append(collected, models.BusinessError(models.CodeQuoteNotFound, "Quote not found or expired", "quoteRef"))
			return errBindRejected
		}
		if err != nil {
			return err
		}

		if quoteExpired(quote.QuoteExpiryDate, time.Now()) {
			collected = append(collected, models.BusinessError(models.CodeQuoteNotFound, "Quote not found or expired", "quoteRef"))
			return errBindRejected
		}

		if quote.PolicyStatus != models.PolicyStatusCreated {
			collected = append(collected, models.BusinessError(models.CodeQuoteConverted, "Quote has already been converted", "quoteRef"))
			return errBindRejected
		}

		collected = append(collected, validateBindRequest(req)...)
		if len(collected) > 0 {
			return errBindRejected
		}

		return persistBindGraph(tx, &quote, req, attr)
	})

	switch {
	case errors.Is(err, errBindRejected):
		return &models.GapBindResponse{Errors: collected}
	case err != nil:
		return &models.GapBindResponse{Errors: []models.ResponseError{models.SystemError(err)}}
	}

	s.notifyApplicant(req, quoteRef)

	return &models.GapBindResponse{Errors: []models.ResponseError{}}
}

// validateBindRequest accumulates every field-level failure so the caller
// can fix them all in one round trip.
func validateBindRequest(req *models.GapBindRequest) []models.ResponseError {
	var errs []models.ResponseError

	if req.VehicleValue <= 0 {
		errs = append(errs, models.ValidationError(models.CodeVehicleValue, "Vehicle value must be greater than 0", "vehicleValue"))
	}

	if !req.AgreeToDeclaration {
		errs = append(errs, models.ValidationError(models.CodeDeclaration, "Must agree to declaration", "agreeToDeclaration"))
	}

	if req.PaymentMethod == models.PaymentMethodFinanced &&
		(req.LoanContractNumber == nil || utils.SanitizeInput(*req.LoanContractNumber) == "") {
		errs = append(errs, models.ValidationError(models.CodeLoanContract,
			"Loan contract number is mandatory when payment method is FINANCED", "loanContractNumber"))
	}

	if contact := req.Applicant.Contact; contact != nil && contact.EmailAddress != nil &&
		*contact.EmailAddress != "" && !utils.ValidateEmail(*contact.EmailAddress) {
		errs = append(errs, models.ValidationError(models.CodeEmailFormat,
			"Applicant contact email address is not valid", "applicant.applicantContact.emailAddress"))
	}

	return errs
}

// quoteExpired reports whether the stored expiry date string is in the
// past. Unparseable values fail open; the quote stays bindable.
func quoteExpired(expiryDate string, now time.Time) bool {
	if expiryDate == "" {
		return false
	}
	expiry, err := time.ParseInLocation("2006-01-02", expiryDate, now.Location())
	if err != nil {
		return false
	}
	// The quote is valid through the whole expiry day.
	return now.After(expiry.AddDate(0, 0, 1))
}

// persistBindGraph writes the bind request and its full dependent graph,
// then flips the parent quote to CONVERTED, all inside the caller's
// transaction.
func persistBindGraph(tx *gorm.DB, quote *models.Quote, req *models.GapBindRequest, attr Attribution) error {
	now := time.Now()

	bind := models.BindRequest{
		QuoteID:                 quote.ID,
		VehicleValue:            req.VehicleValue,
		VehicleInsurer:          req.VehicleInsurer,
		RetailPremiumAdjustment: req.RetailPremiumAdjustment,
		AgreeToDeclaration:      req.AgreeToDeclaration,
		PaymentMethod:           req.PaymentMethod,
		LoanContractNumber:      req.LoanContractNumber,
		ApplicantsEmail:         req.ApplicantsEmail,
		VehicleDepositProvided:  req.VehicleDepositProvided,
		ContinuePurchase:        req.ContinuePurchase,
		CreatedAt:               now,
		AgentCode:               attr.AgentCode,
		BrandCode:               attr.BrandCode,
		UserCode:                attr.UserCode,
	}
	if err := tx.Create(&bind).Error; err != nil {
		return err
	}

	finance := models.FinanceDetail{
		BindRequestID:  bind.ID,
		Company:        req.FinanceDetails.Company,
		Amount:         req.FinanceDetails.Amount,
		BalancePayable: req.FinanceDetails.BalancePayable,
		StartDate:      req.FinanceDetails.StartDate,
		ContractLength: req.FinanceDetails.ContractLength,
	}
	if err := tx.Create(&finance).Error; err != nil {
		return err
	}

	applicant := models.Applicant{
		BindRequestID: bind.ID,
		FirstName:     req.Applicant.FirstName,
		SurName:       req.Applicant.SurName,
		DateOfBirth:   req.Applicant.DateOfBirth,
	}
	if err := tx.Create(&applicant).Error; err != nil {
		return err
	}

	address := models.ApplicantPostalAddress{
		ApplicantID:  applicant.ID,
		AddressLine1: req.Applicant.PostalAddress.AddressLine1,
		AddressLine2: req.Applicant.PostalAddress.AddressLine2,
		Suburb:       req.Applicant.PostalAddress.Suburb,
		City:         req.Applicant.PostalAddress.City,
		Postcode:     req.Applicant.PostalAddress.Postcode,
	}
	if err := tx.Create(&address).Error; err != nil {
		return err
	}

	contact := models.ApplicantContact{
		ApplicantID:  applicant.ID,
		Phone:        req.Applicant.Contact.Phone,
		MobileNum:    req.Applicant.Contact.MobileNum,
		EmailAddress: req.Applicant.Contact.EmailAddress,
	}
	if err := tx.Create(&contact).Error; err != nil {
		return err
	}

	if biz := req.Applicant.BusinessApplicant; biz != nil {
		businessApplicant := models.BusinessApplicant{
			ApplicantID:  applicant.ID,
			BusinessName: biz.BusinessName,
		}
		if err := tx.Create(&businessApplicant).Error; err != nil {
			return err
		}

		for _, person := range biz.BusinessContactPersons {
			contactPerson := models.BusinessContactPerson{
				BusinessApplicantID: businessApplicant.ID,
				FirstName:           person.FirstName,
				Surname:             person.Surname,
				BusinessContactType: person.BusinessContactType,
			}
			if err := tx.Create(&contactPerson).Error; err != nil {
				return err
			}
		}
	}

	for _, joint := range req.Applicant.JointApplicants {
		jointApplicant := models.JointApplicant{
			ApplicantID: applicant.ID,
			FirstName:   joint.FirstName,
			Surname:     joint.Surname,
			DateOfBirth: joint.DateOfBirth,
		}
		if err := tx.Create(&jointApplicant).Error; err != nil {
			return err
		}
	}

	return tx.Model(&models.Quote{}).
		Where("id = ?", quote.ID).
		Updates(map[string]interface{}{
			"policy_status": models.PolicyStatusConverted,
			"updated_at":    now,
		}).Error
}

// notifyApplicant sends the bind confirmation email in the background.
// Delivery failures are logged, never surfaced to the caller.
func (s *BindService) notifyApplicant(req *models.GapBindRequest, quoteRef string) {
	if req.ApplicantsEmail == nil || *req.ApplicantsEmail == "" || !config.MailConfigured() {
		return
	}
	if !utils.ValidateEmail(*req.ApplicantsEmail) {
		return
	}

	email := *req.ApplicantsEmail
	go func() {
		subject := fmt.Sprintf("Your GAP policy for quote %s is confirmed", quoteRef)
		body := fmt.Sprintf(
			"<p>Dear %s %s,</p><p>Your Guaranteed Asset Protection cover for quote <b>%s</b> has been bound. Your insurer will be in touch with the policy documents.</p>",
			req.Applicant.FirstName, req.Applicant.SurName, quoteRef)
		if err := s.sendMail([]string{email}, subject, body); err != nil {
			log.Printf("Warning: Failed to send bind confirmation for quote %s: %v", quoteRef, err)
		}
	}()
}
