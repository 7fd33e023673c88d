package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// DisputeHandler exposes dispute review endpoints.
type DisputeHandler struct {
	service *services.DisputeService
}

// NewDisputeHandler constructs a DisputeHandler.
func NewDisputeHandler(service *services.DisputeService) *DisputeHandler {
	return &DisputeHandler{service: service}
}

// List returns disputes filtered by status.
func (h *DisputeHandler) List(c *gin.Context) {
	status := c.Query("status")
	items, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, status)
}

// Get returns a single dispute.
func (h *DisputeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dispute, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dispute)
}

type openDisputePayload struct {
	Type        string `json:"type" validate:"required,oneof=product_quality delivery_issue payment_dispute"`
	Buyer       string `json:"buyer" validate:"notblank"`
	Seller      string `json:"seller" validate:"notblank"`
	Item        string `json:"item" validate:"notblank"`
	Description string `json:"description"`
}

// Open files a new dispute.
func (h *DisputeHandler) Open(c *gin.Context) {
	var payload openDisputePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	dispute, err := h.service.Open(c.Request.Context(), services.OpenDisputeInput(payload))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, dispute)
}

type notesPayload struct {
	Notes string `json:"notes"`
}

// Annotate replaces the admin notes of an open or resolved dispute.
func (h *DisputeHandler) Annotate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload notesPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	dispute, err := h.service.Annotate(c.Request.Context(), id, payload.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dispute)
}

type resolvePayload struct {
	Resolution string `json:"resolution"`
}

// Resolve records a resolution.
func (h *DisputeHandler) Resolve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload resolvePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	dispute, err := h.service.Resolve(c.Request.Context(), id, payload.Resolution)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dispute)
}

// Close closes a dispute.
func (h *DisputeHandler) Close(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dispute, err := h.service.Close(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dispute)
}
