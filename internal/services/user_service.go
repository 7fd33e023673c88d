package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
	"github.com/charlesng35/marketadmin/pkg/logger"
	"github.com/charlesng35/marketadmin/pkg/metrics"
)

// UserService moderates marketplace member accounts.
type UserService struct {
	mu  sync.Mutex
	db  *gorm.DB
	log *zap.Logger
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB) (*UserService, error) {
	if db == nil {
		return nil, errors.New("user service: db is required")
	}
	return &UserService{db: db, log: logger.WithModule("users")}, nil
}

// List returns members in join order, optionally narrowed to one status.
func (s *UserService) List(ctx context.Context, status string) ([]models.User, error) {
	ctx = ensureContext(ctx)

	selected, apply, err := parseFilter("status", status, models.UserStatuses)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Order("id ASC")
	if apply {
		query = query.Where("status = ?", selected)
	}

	users := make([]models.User, 0)
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("user service: list users: %w", err)
	}
	return users, nil
}

// Get returns a member together with their account history, most recent first.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("occurred_at DESC") }).
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user", id)
		}
		return nil, fmt.Errorf("user service: load user: %w", err)
	}
	return &user, nil
}

// Suspend suspends an active member.
func (s *UserService) Suspend(ctx context.Context, id uint) (*models.User, error) {
	return s.setStatus(ctx, id, "suspend", models.UserSuspended, models.UserActive)
}

// Deactivate deactivates an active or suspended member.
func (s *UserService) Deactivate(ctx context.Context, id uint) (*models.User, error) {
	return s.setStatus(ctx, id, "deactivate", models.UserDeactivated, models.UserActive, models.UserSuspended)
}

// Restore reactivates a suspended or deactivated member.
func (s *UserService) Restore(ctx context.Context, id uint) (*models.User, error) {
	return s.setStatus(ctx, id, "restore", models.UserActive, models.UserSuspended, models.UserDeactivated)
}

// Delete removes a member and their account history.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := findByID[models.User](tx, "user", id)
		if err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.AccountActivity{}).Error; err != nil {
			return fmt.Errorf("delete account history: %w", err)
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return passThrough("user service", err)
	}

	metrics.ModerationActions.WithLabelValues("user", "delete").Inc()
	s.log.Info("user deleted", zap.Uint("id", id))
	return nil
}

func (s *UserService) setStatus(ctx context.Context, id uint, action string, target models.UserStatus, from ...models.UserStatus) (*models.User, error) {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := updateRecord(ctx, s.db, "user", id, func(user *models.User) (map[string]any, error) {
		if !slices.Contains(from, user.Status) {
			return nil, apperrors.NewInvalidState("cannot %s a %s user", action, user.Status)
		}
		return map[string]any{"status": target}, nil
	})
	if err != nil {
		return nil, passThrough("user service", err)
	}

	metrics.ModerationActions.WithLabelValues("user", action).Inc()
	s.log.Info("user status changed", zap.Uint("id", id), zap.String("status", string(target)))
	return user, nil
}
