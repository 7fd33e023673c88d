package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
	"github.com/charlesng35/marketadmin/pkg/logger"
	"github.com/charlesng35/marketadmin/pkg/metrics"
)

// AffiliateService manages referral partners.
type AffiliateService struct {
	mu  sync.Mutex
	db  *gorm.DB
	log *zap.Logger
}

// NewAffiliateService constructs an AffiliateService.
func NewAffiliateService(db *gorm.DB) (*AffiliateService, error) {
	if db == nil {
		return nil, errors.New("affiliate service: db is required")
	}
	return &AffiliateService{db: db, log: logger.WithModule("affiliates")}, nil
}

// List returns affiliates, optionally narrowed to one status.
func (s *AffiliateService) List(ctx context.Context, status string) ([]models.Affiliate, error) {
	ctx = ensureContext(ctx)

	selected, apply, err := parseFilter("status", status, models.AffiliateStatuses)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Order("id ASC")
	if apply {
		query = query.Where("status = ?", selected)
	}

	affiliates := make([]models.Affiliate, 0)
	if err := query.Find(&affiliates).Error; err != nil {
		return nil, fmt.Errorf("affiliate service: list affiliates: %w", err)
	}
	return affiliates, nil
}

// Get returns a single affiliate.
func (s *AffiliateService) Get(ctx context.Context, id uint) (*models.Affiliate, error) {
	ctx = ensureContext(ctx)
	affiliate, err := findByID[models.Affiliate](s.db.WithContext(ctx), "affiliate", id)
	if err != nil {
		return nil, passThrough("affiliate service", err)
	}
	return affiliate, nil
}

// ToggleStatus switches an affiliate between active and deactivated.
func (s *AffiliateService) ToggleStatus(ctx context.Context, id uint) (*models.Affiliate, error) {
	return s.update(ctx, id, "toggle", func(affiliate *models.Affiliate) (map[string]any, error) {
		next := models.AffiliateDeactivated
		if affiliate.Status != models.AffiliateActive {
			next = models.AffiliateActive
		}
		return map[string]any{"status": next}, nil
	})
}

// UpdateCommission sets the commission percentage, which must lie within 0..100.
func (s *AffiliateService) UpdateCommission(ctx context.Context, id uint, rate float64) (*models.Affiliate, error) {
	if rate < 0 || rate > 100 {
		return nil, apperrors.NewValidation("commission rate must be between 0 and 100")
	}
	return s.update(ctx, id, "commission", func(*models.Affiliate) (map[string]any, error) {
		return map[string]any{"commission_rate": rate}, nil
	})
}

func (s *AffiliateService) update(ctx context.Context, id uint, action string, apply func(*models.Affiliate) (map[string]any, error)) (*models.Affiliate, error) {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	affiliate, err := updateRecord(ctx, s.db, "affiliate", id, apply)
	if err != nil {
		return nil, passThrough("affiliate service", err)
	}

	metrics.ModerationActions.WithLabelValues("affiliate", action).Inc()
	s.log.Info("affiliate updated",
		zap.Uint("id", id),
		zap.String("action", action),
		zap.String("status", string(affiliate.Status)),
		zap.Float64("commission_rate", affiliate.CommissionRate),
	)
	return affiliate, nil
}
