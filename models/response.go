package models

// Error categories returned in response payloads. FUNCTIONAL is reserved
// for collaborator failures (vehicle lookup, rating) once those go live.
const (
	CategoryValidation = "VALIDATION"
	CategoryFunctional = "FUNCTIONAL"
	CategoryBusiness   = "BUSINESS"
	CategorySystem     = "SYSTEM"
)

// Stable error codes. Callers match on these, never on message text.
const (
	CodeRegoMandatory     = "ER001"
	CodeQuoteRefMandatory = "ER002"
	CodeVehicleValue      = "ER003"
	CodeDeclaration       = "ER004"
	CodeLoanContract      = "ER005"
	CodeHeaderMandatory   = "ER006"
	CodeEmailFormat       = "ER007"
	CodeBadPayload        = "ER400"
	CodeQuoteNotFound     = "ER404"
	CodeQuoteConverted    = "ER409"
	CodeCollaborator      = "ER502"
	CodeSystem            = "ER999"
)

// ResponseError is the structured error record carried in every response.
type ResponseError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
}

// ValidationError builds a VALIDATION error pinned to a request field.
func ValidationError(code, message, field string) ResponseError {
	return ResponseError{Category: CategoryValidation, Code: code, Message: message, Field: field}
}

// BusinessError builds a BUSINESS error pinned to a request field.
func BusinessError(code, message, field string) ResponseError {
	return ResponseError{Category: CategoryBusiness, Code: code, Message: message, Field: field}
}

// SystemError wraps an unexpected internal failure. Only the message text
// of the original error survives; its type does not cross the boundary.
func SystemError(err error) ResponseError {
	return ResponseError{Category: CategorySystem, Code: CodeSystem, Message: "System error: " + err.Error()}
}
