package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
	"github.com/charlesng35/marketadmin/internal/templates"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
	"github.com/charlesng35/marketadmin/pkg/logger"
	"github.com/charlesng35/marketadmin/pkg/metrics"
)

// NotificationSentEvent is the event name handed to the Broadcaster by Send.
const NotificationSentEvent = "notification.sent"

// Broadcaster delivers sent notifications to subscribed members and reports how many
// subscribers received the event.
type Broadcaster interface {
	Broadcast(audience models.Audience, event string, payload any) int
}

// NotificationDTO represents the API-friendly notification payload.
type NotificationDTO struct {
	ID          uint                    `json:"id"`
	Type        models.NotificationType `json:"type"`
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	Audience    models.Audience         `json:"target_audience"`
	Active      bool                    `json:"active"`
	TemplateKey string                  `json:"template_key,omitempty"`
	Variables   map[string]string       `json:"variables,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// NotificationDraft carries the operator-supplied fields for create and update. When
// TemplateKey names a known template, the template fills every blank Type, Title, Message and
// Audience field; Message is always bound with Variables.
type NotificationDraft struct {
	TemplateKey string            `json:"template_key"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Audience    string            `json:"target_audience"`
	Active      *bool             `json:"active"`
	Variables   map[string]string `json:"variables"`
}

// NotificationFilter narrows List results. Empty fields and "all" match every record; Active
// accepts "active" or "inactive".
type NotificationFilter struct {
	Audience string
	Type     string
	Active   string
}

// SendResult reports the outcome of handing a notification to the broadcaster.
type SendResult struct {
	Notification NotificationDTO `json:"notification"`
	Delivered    int             `json:"delivered"`
}

// NotificationService owns the notification record collection.
type NotificationService struct {
	mu          sync.Mutex
	db          *gorm.DB
	store       *templates.Store
	broadcaster Broadcaster
	log         *zap.Logger
}

// NewNotificationService constructs a NotificationService. A nil store selects the built-in
// template catalog; a nil broadcaster turns Send into a logged no-op.
func NewNotificationService(db *gorm.DB, store *templates.Store, broadcaster Broadcaster) (*NotificationService, error) {
	if db == nil {
		return nil, errors.New("notification service: db is required")
	}
	if store == nil {
		store = templates.DefaultStore()
	}
	return &NotificationService{
		db:          db,
		store:       store,
		broadcaster: broadcaster,
		log:         logger.WithModule("notifications"),
	}, nil
}

// Templates exposes the catalog used to resolve template keys.
func (s *NotificationService) Templates() *templates.Store {
	return s.store
}

// List returns notifications in insertion order, narrowed by filter.
func (s *NotificationService) List(ctx context.Context, filter NotificationFilter) ([]NotificationDTO, error) {
	ctx = ensureContext(ctx)

	audience, byAudience, err := parseFilter("audience", filter.Audience, models.Audiences)
	if err != nil {
		return nil, err
	}
	kind, byType, err := parseFilter("type", filter.Type, models.NotificationTypes)
	if err != nil {
		return nil, err
	}
	active, byActive, err := parseFilter("active", filter.Active, []string{"active", "inactive"})
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Order("id ASC")
	if byAudience {
		query = query.Where("audience = ?", audience)
	}
	if byType {
		query = query.Where("type = ?", kind)
	}
	if byActive {
		query = query.Where("active = ?", active == "active")
	}

	var rows []models.Notification
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("notification service: list notifications: %w", err)
	}
	return mapNotificationRows(rows), nil
}

// Get returns a single notification.
func (s *NotificationService) Get(ctx context.Context, id uint) (*NotificationDTO, error) {
	ctx = ensureContext(ctx)
	row, err := findByID[models.Notification](s.db.WithContext(ctx), "notification", id)
	if err != nil {
		return nil, passThrough("notification service", err)
	}
	dto := mapNotification(*row)
	return &dto, nil
}

// Create validates the draft, binds its message and appends the record.
func (s *NotificationService) Create(ctx context.Context, draft NotificationDraft) (*NotificationDTO, error) {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	notification, err := s.resolveDraft(draft)
	if err != nil {
		return nil, err
	}
	notification.Active = true
	if draft.Active != nil {
		notification.Active = *draft.Active
	}

	if err := s.db.WithContext(ctx).Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("notification service: create notification: %w", err)
	}

	metrics.NotificationEvents.WithLabelValues("created").Inc()
	s.log.Info("notification created",
		zap.Uint("id", notification.ID),
		zap.String("template", notification.TemplateKey),
		zap.String("audience", string(notification.Audience)),
	)

	dto := mapNotification(notification)
	return &dto, nil
}

// Update replaces the editable fields of an existing record. ID and creation time are kept;
// Active is kept unless the draft sets it.
func (s *NotificationService) Update(ctx context.Context, id uint, draft NotificationDraft) (*NotificationDTO, error) {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated models.Notification
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findByID[models.Notification](tx, "notification", id)
		if err != nil {
			return err
		}

		next, err := s.resolveDraft(draft)
		if err != nil {
			return err
		}
		next.BaseModel = existing.BaseModel
		next.Active = existing.Active
		if draft.Active != nil {
			next.Active = *draft.Active
		}

		if err := tx.Model(existing).Select("type", "title", "message", "audience", "active", "template_key", "variables", "updated_at").
			Updates(&next).Error; err != nil {
			return fmt.Errorf("update notification: %w", err)
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, passThrough("notification service", err)
	}

	metrics.NotificationEvents.WithLabelValues("updated").Inc()
	s.log.Info("notification updated", zap.Uint("id", id))

	dto := mapNotification(updated)
	return &dto, nil
}

// ToggleActive flips the active flag of a record.
func (s *NotificationService) ToggleActive(ctx context.Context, id uint) (*NotificationDTO, error) {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var toggled models.Notification
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findByID[models.Notification](tx, "notification", id)
		if err != nil {
			return err
		}
		existing.Active = !existing.Active
		if err := tx.Model(existing).Update("active", existing.Active).Error; err != nil {
			return fmt.Errorf("toggle notification: %w", err)
		}
		toggled = *existing
		return nil
	})
	if err != nil {
		return nil, passThrough("notification service", err)
	}

	metrics.NotificationEvents.WithLabelValues("toggled").Inc()
	s.log.Info("notification toggled", zap.Uint("id", id), zap.Bool("active", toggled.Active))

	dto := mapNotification(toggled)
	return &dto, nil
}

// Delete removes a record. Deleting an unknown or already deleted id fails with NotFound.
func (s *NotificationService) Delete(ctx context.Context, id uint) error {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.WithContext(ctx).Delete(&models.Notification{}, id)
	if result.Error != nil {
		return fmt.Errorf("notification service: delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("notification", id)
	}

	metrics.NotificationEvents.WithLabelValues("deleted").Inc()
	s.log.Info("notification deleted", zap.Uint("id", id))
	return nil
}

// Send hands an active record to the broadcaster. Inactive records fail with InvalidState.
// The collection lock is held until the hand-off completes, so a concurrent toggle or delete
// cannot slip between the active check and the broadcast.
func (s *NotificationService) Send(ctx context.Context, id uint) (*SendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dto, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !dto.Active {
		return nil, apperrors.NewInvalidState("notification %d is inactive", id)
	}

	result := &SendResult{Notification: *dto}
	if s.broadcaster == nil {
		s.log.Info("notification send skipped, no broadcaster configured", zap.Uint("id", id))
		return result, nil
	}

	result.Delivered = s.broadcaster.Broadcast(dto.Audience, NotificationSentEvent, dto)
	metrics.NotificationEvents.WithLabelValues("sent").Inc()
	s.log.Info("notification sent",
		zap.Uint("id", id),
		zap.String("audience", string(dto.Audience)),
		zap.Int("delivered", result.Delivered),
	)
	return result, nil
}

// resolveDraft applies the template, binds the message and validates every field.
func (s *NotificationService) resolveDraft(draft NotificationDraft) (models.Notification, error) {
	key := strings.TrimSpace(draft.TemplateKey)
	if key != "" {
		tpl, err := s.store.Get(key)
		if err != nil {
			s.log.Warn("unknown template key, falling back to custom notification", zap.String("template", key))
			key = ""
		} else {
			draft.Type = defaultIfEmpty(draft.Type, string(tpl.Type))
			draft.Title = defaultIfEmpty(draft.Title, tpl.Title)
			draft.Message = defaultIfEmpty(draft.Message, tpl.Message)
			draft.Audience = defaultIfEmpty(draft.Audience, string(tpl.Audience))
		}
	}

	kind, err := parseEnum("type", draft.Type, models.NotificationTypes, models.NotificationSystemAlert)
	if err != nil {
		return models.Notification{}, err
	}
	audience, err := parseEnum("target audience", draft.Audience, models.Audiences, models.AudienceAll)
	if err != nil {
		return models.Notification{}, err
	}

	title := strings.TrimSpace(templates.Bind(draft.Title, draft.Variables))
	if title == "" {
		return models.Notification{}, apperrors.NewValidation("title is required")
	}
	message := strings.TrimSpace(templates.Bind(draft.Message, draft.Variables))
	if message == "" {
		return models.Notification{}, apperrors.NewValidation("message is required")
	}

	notification := models.Notification{
		Type:        kind,
		Title:       title,
		Message:     message,
		Audience:    audience,
		TemplateKey: key,
	}

	if len(draft.Variables) > 0 {
		data, err := json.Marshal(draft.Variables)
		if err != nil {
			return models.Notification{}, fmt.Errorf("notification service: marshal variables: %w", err)
		}
		notification.Variables = datatypes.JSON(data)
	}

	return notification, nil
}

func mapNotificationRows(rows []models.Notification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapNotification(row))
	}
	return out
}

func mapNotification(row models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          row.ID,
		Type:        row.Type,
		Title:       row.Title,
		Message:     row.Message,
		Audience:    row.Audience,
		Active:      row.Active,
		TemplateKey: row.TemplateKey,
		Variables:   decodeVariables(row.Variables),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func decodeVariables(data datatypes.JSON) map[string]string {
	if len(data) == 0 {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
