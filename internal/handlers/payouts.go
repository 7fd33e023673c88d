package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// PayoutHandler exposes payout review endpoints.
type PayoutHandler struct {
	service *services.PayoutService
}

// NewPayoutHandler constructs a PayoutHandler.
func NewPayoutHandler(service *services.PayoutService) *PayoutHandler {
	return &PayoutHandler{service: service}
}

// List returns payout requests filtered by status and payee kind.
func (h *PayoutHandler) List(c *gin.Context) {
	filter := services.PayoutFilter{
		Status:    c.Query("status"),
		PayeeKind: c.Query("payee_kind"),
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, joinFilters(filter.Status, filter.PayeeKind))
}

// Get returns a single payout request.
func (h *PayoutHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payout, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payout)
}

type payoutRequestPayload struct {
	PayeeKind      string  `json:"payee_kind" validate:"required,oneof=affiliate seller"`
	PayeeID        uint    `json:"payee_id"`
	PayeeName      string  `json:"payee_name" validate:"notblank"`
	Amount         float64 `json:"amount" validate:"gte=0"`
	PaymentMethod  string  `json:"payment_method" validate:"max=64"`
	AccountDetails string  `json:"account_details" validate:"max=255"`
}

// Request files a new pending payout request.
func (h *PayoutHandler) Request(c *gin.Context) {
	var payload payoutRequestPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	payout, err := h.service.Request(c.Request.Context(), services.PayoutRequestInput{
		PayeeKind:      payload.PayeeKind,
		PayeeID:        payload.PayeeID,
		PayeeName:      payload.PayeeName,
		Amount:         payload.Amount,
		PaymentMethod:  payload.PaymentMethod,
		AccountDetails: payload.AccountDetails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, payout)
}

// Approve moves a pending request to approved.
func (h *PayoutHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payout, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payout)
}

type rejectPayload struct {
	Reason string `json:"reason"`
}

// Reject moves a pending request to rejected with a reason.
func (h *PayoutHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload rejectPayload
	if !bindAndValidate(c, &payload) {
		return
	}

	payout, err := h.service.Reject(c.Request.Context(), id, payload.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payout)
}
