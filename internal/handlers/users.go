package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// UserHandler exposes member moderation endpoints.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns members filtered by status.
func (h *UserHandler) List(c *gin.Context) {
	listByStatus("status", h.service.List)(c)
}

// Get returns a member with their account history.
func (h *UserHandler) Get(c *gin.Context) {
	byID(h.service.Get)(c)
}

// Suspend suspends an active member.
func (h *UserHandler) Suspend(c *gin.Context) {
	byID(h.service.Suspend)(c)
}

// Deactivate deactivates an active or suspended member.
func (h *UserHandler) Deactivate(c *gin.Context) {
	byID(h.service.Deactivate)(c)
}

// Restore reactivates a suspended or deactivated member.
func (h *UserHandler) Restore(c *gin.Context) {
	byID(h.service.Restore)(c)
}

// Delete removes a member and their history.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
