package middleware

import (
	"net/http"

	"gap-quote-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys for the caller attribution values.
const (
	ContextAgentCode = "agentCode"
	ContextBrandCode = "brandCode"
	ContextUserCode  = "userCode"
)

const (
	HeaderAgentCode = "X-Agent-Code"
	HeaderBrandCode = "X-Brand-Code"
	HeaderUserCode  = "X-User-Code"
	HeaderRequestID = "X-Request-ID"
)

// AttributionMiddleware requires the agent/brand/user header trio and
// copies the values into the request context. Violations are reported
// in-band like every other validation failure on this API.
func AttributionMiddleware() gin.HandlerFunc {
	headers := []struct {
		name string
		key  string
	}{
		{HeaderAgentCode, ContextAgentCode},
		{HeaderBrandCode, ContextBrandCode},
		{HeaderUserCode, ContextUserCode},
	}

	return func(c *gin.Context) {
		var errs []models.ResponseError
		for _, header := range headers {
			value := c.GetHeader(header.name)
			if value == "" {
				errs = append(errs, models.ValidationError(
					models.CodeHeaderMandatory, header.name+" header is mandatory", header.name))
				continue
			}
			c.Set(header.key, value)
		}

		if len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"errors": errs})
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware tags every request with an ID for log correlation,
// honoring one supplied by the caller.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// CORSMiddleware allows browser callers from any origin; the API carries
// no cookies or credentials.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers",
			"Content-Type, X-Agent-Code, X-Brand-Code, X-User-Code, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
