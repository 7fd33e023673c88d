package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// AffiliateHandler exposes affiliate management endpoints.
type AffiliateHandler struct {
	service *services.AffiliateService
}

// NewAffiliateHandler constructs an AffiliateHandler.
func NewAffiliateHandler(service *services.AffiliateService) *AffiliateHandler {
	return &AffiliateHandler{service: service}
}

func (h *AffiliateHandler) List(c *gin.Context) {
	listByStatus("status", h.service.List)(c)
}

func (h *AffiliateHandler) Get(c *gin.Context) {
	byID(h.service.Get)(c)
}

// ToggleStatus flips an affiliate between active and deactivated.
func (h *AffiliateHandler) ToggleStatus(c *gin.Context) {
	byID(h.service.ToggleStatus)(c)
}

type commissionPayload struct {
	Rate *float64 `json:"commission_rate" validate:"required"`
}

// UpdateCommission sets the commission rate percentage.
func (h *AffiliateHandler) UpdateCommission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload commissionPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	affiliate, err := h.service.UpdateCommission(c.Request.Context(), id, *payload.Rate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, affiliate)
}
