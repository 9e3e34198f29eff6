package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/SscSPs/zcred_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves admin-only operations. Admin rights are checked by the services.
type adminHandler struct {
	conversionService portssvc.ConversionSvcFacade
	userService       portssvc.PasswordResetSvc
}

// RegisterAdminRoutes registers the admin routes on rg.
func RegisterAdminRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, userService portssvc.PasswordResetSvc) {
	h := &adminHandler{conversionService: conversionService, userService: userService}

	rates := rg.Group("/conversion-rates")
	{
		rates.POST("", h.publishConversionRate)
		rates.GET("", h.listConversionRates)
	}
	rg.POST("/users/:userID/password-reset", h.resetPassword)
}

func (h *adminHandler) publishConversionRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateConversionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PublishConversionRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	adminUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	rate, err := h.conversionService.PublishConversionRate(c.Request.Context(), req, adminUserID)
	if err != nil {
		respondServiceError(c, err, "publish conversion rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToConversionRateResponse(rate))
}

func (h *adminHandler) listConversionRates(c *gin.Context) {
	var params dto.ListConversionRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	adminUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	rates, err := h.conversionService.ListConversionRates(c.Request.Context(), params.Limit, params.Offset, adminUserID)
	if err != nil {
		respondServiceError(c, err, "list conversion rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListConversionRatesResponse(rates, h.conversionService.CachedRate()))
}

// resetPassword sets a user's password. An empty body or empty newPassword
// generates one and returns it once in the response.
func (h *adminHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetPasswordRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}
	}
	adminUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	targetUserID := c.Param("userID")

	generated, err := h.userService.ResetPassword(c.Request.Context(), targetUserID, req.NewPassword, adminUserID)
	if err != nil {
		respondServiceError(c, err, "reset password")
		return
	}

	logger.Info("Password reset via admin API", slog.String("target_user_id", targetUserID))
	c.JSON(http.StatusOK, dto.ResetPasswordResponse{UserID: targetUserID, GeneratedPassword: generated})
}
