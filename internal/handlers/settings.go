package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// SettingsHandler exposes fee settings and the terms and conditions document.
type SettingsHandler struct {
	service *services.SettingsService
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) Fees(c *gin.Context) {
	fees, err := h.service.Fees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, fees)
}

type feesPayload struct {
	PlatformPercent *float64 `json:"platform_percent" validate:"required,gte=0,lte=100"`
	TransactionFee  *float64 `json:"transaction_fee" validate:"required,gte=0"`
}

// UpdateFees replaces both fee settings.
func (h *SettingsHandler) UpdateFees(c *gin.Context) {
	var payload feesPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	fees, err := h.service.UpdateFees(c.Request.Context(), services.FeeSettings{
		PlatformPercent: *payload.PlatformPercent,
		TransactionFee:  *payload.TransactionFee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, fees)
}

func (h *SettingsHandler) Terms(c *gin.Context) {
	terms, err := h.service.Terms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, terms)
}

type termsPayload struct {
	Content string `json:"content" validate:"notblank"`
}

// UpdateTerms publishes a new version of the terms and conditions.
func (h *SettingsHandler) UpdateTerms(c *gin.Context) {
	var payload termsPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	terms, err := h.service.UpdateTerms(c.Request.Context(), payload.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, terms)
}
