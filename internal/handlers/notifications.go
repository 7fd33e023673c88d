package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/notifications"
	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/internal/templates"
	appErrors "github.com/charlesng35/marketadmin/pkg/errors"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// NotificationHandler exposes HTTP endpoints for notification records and templates.
type NotificationHandler struct {
	service *services.NotificationService
	hub     *notifications.Hub
}

// NewNotificationHandler constructs a notification handler. A nil hub disables streaming.
func NewNotificationHandler(service *services.NotificationService, hub *notifications.Hub) *NotificationHandler {
	return &NotificationHandler{service: service, hub: hub}
}

// List returns notification records filtered by audience, type and active state.
func (h *NotificationHandler) List(c *gin.Context) {
	filter := services.NotificationFilter{
		Audience: c.Query("audience"),
		Type:     c.Query("type"),
		Active:   c.Query("active"),
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, items, joinFilters(filter.Audience, filter.Type, filter.Active))
}

// Get returns a single notification record.
func (h *NotificationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dto, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

// Create stores a new notification record, optionally derived from a template.
func (h *NotificationHandler) Create(c *gin.Context) {
	var draft services.NotificationDraft
	if !bindAndValidate(c, &draft) {
		return
	}

	dto, err := h.service.Create(c.Request.Context(), draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, dto)
}

// Update replaces the editable fields of a notification record.
func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var draft services.NotificationDraft
	if !bindAndValidate(c, &draft) {
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

// Toggle flips the active flag.
func (h *NotificationHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dto, err := h.service.ToggleActive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

// Delete removes a notification record.
func (h *NotificationHandler) Delete(c *gin.Context) {
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

// Send hands an active record to subscribed members.
func (h *NotificationHandler) Send(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.Send(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

type templateView struct {
	templates.Template
	Name      string   `json:"name"`
	Variables []string `json:"variables"`
}

func newTemplateView(t templates.Template) templateView {
	vars := t.Variables()
	if vars == nil {
		vars = []string{}
	}
	return templateView{Template: t, Name: templates.DisplayName(t.Key), Variables: vars}
}

// ListTemplates returns the catalog, optionally narrowed to one category.
func (h *NotificationHandler) ListTemplates(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	items := make([]templateView, 0)
	for _, t := range h.service.Templates().List() {
		if category != "" && category != services.FilterAll && string(t.Category) != category {
			continue
		}
		items = append(items, newTemplateView(t))
	}
	response.List(c, items, category)
}

// GetTemplate returns a single template and the variables its message expects.
func (h *NotificationHandler) GetTemplate(c *gin.Context) {
	t, err := h.service.Templates().Get(c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, newTemplateView(t))
}

type previewRequest struct {
	Variables map[string]string `json:"variables"`
}

type previewResponse struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Unbound []string `json:"unbound"`
}

// PreviewTemplate binds the supplied variables without storing anything.
func (h *NotificationHandler) PreviewTemplate(c *gin.Context) {
	t, err := h.service.Templates().Get(c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var req previewRequest
	if c.Request.ContentLength != 0 && !bindAndValidate(c, &req) {
		return
	}

	unbound := templates.Unbound(t.Message, req.Variables)
	if unbound == nil {
		unbound = []string{}
	}
	response.Success(c, http.StatusOK, previewResponse{
		Key:     t.Key,
		Title:   templates.Bind(t.Title, req.Variables),
		Message: templates.Bind(t.Message, req.Variables),
		Unbound: unbound,
	})
}

// Stream upgrades the connection to a WebSocket that receives sent notifications for the
// requested audience segment.
func (h *NotificationHandler) Stream(c *gin.Context) {
	if h.hub == nil {
		response.Error(c, appErrors.NewNotFound("route", c.Request.URL.Path))
		return
	}

	audience, ok := notifications.ParseAudience(c.Query("audience"))
	if !ok {
		response.Error(c, appErrors.NewValidation("unknown audience %q", c.Query("audience")))
		return
	}

	h.hub.Serve(audience, c.Writer, c.Request)
}

func joinFilters(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ",")
}
