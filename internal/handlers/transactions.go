package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// TransactionHandler exposes the transaction ledger.
type TransactionHandler struct {
	service *services.TransactionService
}

// NewTransactionHandler constructs a TransactionHandler.
func NewTransactionHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// List returns transactions filtered by type, newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	listByStatus("type", h.service.List)(c)
}

// FeeSummary totals platform fees over completed transactions.
func (h *TransactionHandler) FeeSummary(c *gin.Context) {
	summary, err := h.service.FeeSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}
