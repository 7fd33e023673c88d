package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// ListingHandler exposes listing moderation endpoints.
type ListingHandler struct {
	service *services.ListingService
}

// NewListingHandler constructs a ListingHandler.
func NewListingHandler(service *services.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

func (h *ListingHandler) List(c *gin.Context) {
	listByStatus("status", h.service.List)(c)
}

func (h *ListingHandler) Get(c *gin.Context) {
	byID(h.service.Get)(c)
}

func (h *ListingHandler) Approve(c *gin.Context) {
	byID(h.service.Approve)(c)
}

func (h *ListingHandler) Hide(c *gin.Context) {
	byID(h.service.Hide)(c)
}

func (h *ListingHandler) ToggleFeatured(c *gin.Context) {
	byID(h.service.ToggleFeatured)(c)
}

type removePayload struct {
	Reason string `json:"reason"`
}

// Remove takes a listing down with a moderation reason.
func (h *ListingHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload removePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	listing, err := h.service.Remove(c.Request.Context(), id, payload.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listing)
}
