package controllers

import (
	"net/http"

	"gap-quote-api/middleware"
	"gap-quote-api/models"
	"gap-quote-api/services"

	"github.com/gin-gonic/gin"
)

func attributionFromContext(c *gin.Context) services.Attribution {
	return services.Attribution{
		AgentCode: c.GetString(middleware.ContextAgentCode),
		BrandCode: c.GetString(middleware.ContextBrandCode),
		UserCode:  c.GetString(middleware.ContextUserCode),
	}
}

// CreateQuote handles POST /quickquote/generator/gap/v2/quote/create.
// Failures are reported via the errors array, always with HTTP 200.
func CreateQuote(c *gin.Context) {
	var req models.GapQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.GapQuoteResponse{
			Errors: []models.ResponseError{
				models.ValidationError(models.CodeBadPayload, "Invalid request payload: "+err.Error(), ""),
			},
		})
		return
	}

	response := services.NewQuoteService(nil).CreateQuote(&req, attributionFromContext(c))
	c.JSON(http.StatusOK, response)
}

// BindQuote handles POST /quickquote/generator/gap/v2/quote/bind. An empty
// errors array in the response signals success.
func BindQuote(c *gin.Context) {
	var req models.GapBindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.GapBindResponse{
			Errors: []models.ResponseError{
				models.ValidationError(models.CodeBadPayload, "Invalid request payload: "+err.Error(), ""),
			},
		})
		return
	}

	response := services.NewBindService(nil).BindQuote(&req, attributionFromContext(c))
	c.JSON(http.StatusOK, response)
}
