package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	userService portssvc.UserReaderSvc
}

// RegisterProfileRoutes registers the profile route for the authenticated user.
func RegisterProfileRoutes(rg *gin.RouterGroup, userService portssvc.UserReaderSvc) {
	h := &profileHandler{userService: userService}
	rg.GET("/profile", h.getProfile)
}

func (h *profileHandler) getProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "load profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
