package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gap-quote-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/quote/create", CreateQuote)
	router.POST("/quote/bind", BindQuote)
	return router
}

func TestCreateQuoteMalformedBody(t *testing.T) {
	router := quoteRouter()

	req := httptest.NewRequest(http.MethodPost, "/quote/create", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.GapQuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, models.CategoryValidation, body.Errors[0].Category)
	assert.Equal(t, models.CodeBadPayload, body.Errors[0].Code)
	assert.Nil(t, body.QuoteResponse)
}

func TestCreateQuoteEmptyIdentifier(t *testing.T) {
	router := quoteRouter()

	req := httptest.NewRequest(http.MethodPost, "/quote/create",
		strings.NewReader(`{"regoOrVin":"","maxShortfall":"GAP_5000"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.GapQuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, models.CodeRegoMandatory, body.Errors[0].Code)
	assert.Equal(t, "regoOrVin", body.Errors[0].Field)
}

func TestBindQuoteMissingMandatoryBlocks(t *testing.T) {
	router := quoteRouter()

	// financeDetails and applicant are structurally mandatory
	req := httptest.NewRequest(http.MethodPost, "/quote/bind",
		strings.NewReader(`{"quoteRef":"12345678","vehicleValue":1000}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.GapBindResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, models.CategoryValidation, body.Errors[0].Category)
	assert.Equal(t, models.CodeBadPayload, body.Errors[0].Code)
}

func TestBindQuoteEmptyReference(t *testing.T) {
	router := quoteRouter()

	payload := `{
		"quoteRef": "",
		"vehicleValue": 1000,
		"vehicleInsurer": "AA Insurance",
		"agreeToDeclaration": true,
		"paymentMethod": "CASH_SALES_AGENT",
		"vehicleDepositProvided": false,
		"financeDetails": {"company":"UDC","amount":1,"balancePayable":1,"startDate":"2025-01-01","contractLength":12},
		"applicant": {
			"firstName": "Jane", "surName": "Doe", "dateOfBirth": "1990-06-15",
			"applicantPostalAddress": {"addressLine1":"12 Queen St","suburb":"CBD","city":"Auckland","postcode":"1010"},
			"applicantContact": {"phone":"095550123"}
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/quote/bind", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.GapBindResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, models.CodeQuoteRefMandatory, body.Errors[0].Code)
	assert.Equal(t, "quoteRef", body.Errors[0].Field)
}
