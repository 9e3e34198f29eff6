package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/zcred_app/internal/core/domain"
	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/SscSPs/zcred_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// conversionHandler serves the current rate, quotes and Z-Credit formatting.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// RegisterConversionRoutes registers the rate, quote and formatting routes.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := &conversionHandler{conversionService: conversionService}

	rg.GET("/conversion-rate", h.getConversionRate)
	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.quote)
		quotes.POST("/deposit", h.quoteDeposit)
		quotes.POST("/withdrawal", h.quoteWithdrawal)
	}
	rg.POST("/zcreds/format", h.formatZcreds)
}

func (h *conversionHandler) getConversionRate(c *gin.Context) {
	rate := h.conversionService.GetLatestRate(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToLatestRateResponse(rate))
}

func (h *conversionHandler) quoteDeposit(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount: " + err.Error()})
		return
	}

	quote, err := h.conversionService.QuoteDeposit(c.Request.Context(), req.Amount)
	if err != nil {
		respondServiceError(c, err, "quote deposit")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

func (h *conversionHandler) quoteWithdrawal(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount: " + err.Error()})
		return
	}

	quote, err := h.conversionService.QuoteWithdrawal(c.Request.Context(), req.Amount)
	if err != nil {
		respondServiceError(c, err, "quote withdrawal")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// quote dispatches on the unit the amount was entered in.
func (h *conversionHandler) quote(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount: " + err.Error()})
		return
	}

	var (
		quote *domain.Quote
		err   error
	)
	if domain.ParseUnit(req.From) == domain.UnitPKR {
		quote, err = h.conversionService.QuoteDeposit(c.Request.Context(), req.Amount)
	} else {
		quote, err = h.conversionService.QuoteWithdrawal(c.Request.Context(), req.Amount)
	}
	if err != nil {
		respondServiceError(c, err, "quote conversion")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// formatZcreds never rejects the amount itself; invalid text is reported through Valid.
func (h *conversionHandler) formatZcreds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatZcredsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	var rate decimal.Decimal
	if req.Rate == "" {
		rate = h.conversionService.GetLatestRate(c.Request.Context())
	} else {
		parsed, err := decimal.NewFromString(req.Rate)
		if err != nil || !parsed.IsPositive() {
			logger.Warn("Rejected format request with bad rate", slog.String("rate", req.Rate))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rate must be a positive number"})
			return
		}
		rate = parsed
	}

	c.JSON(http.StatusOK, dto.ToFormatZcredsResponse(req.Amount, rate))
}
