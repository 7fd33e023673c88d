package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
	"github.com/charlesng35/marketadmin/pkg/logger"
	"github.com/charlesng35/marketadmin/pkg/metrics"
)

// ListingService moderates marketplace listings.
type ListingService struct {
	mu  sync.Mutex
	db  *gorm.DB
	log *zap.Logger
}

// NewListingService constructs a ListingService.
func NewListingService(db *gorm.DB) (*ListingService, error) {
	if db == nil {
		return nil, errors.New("listing service: db is required")
	}
	return &ListingService{db: db, log: logger.WithModule("listings")}, nil
}

// List returns listings in creation order, optionally narrowed to one status.
func (s *ListingService) List(ctx context.Context, status string) ([]models.Listing, error) {
	ctx = ensureContext(ctx)

	selected, apply, err := parseFilter("status", status, models.ListingStatuses)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Order("id ASC")
	if apply {
		query = query.Where("status = ?", selected)
	}

	listings := make([]models.Listing, 0)
	if err := query.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("listing service: list listings: %w", err)
	}
	return listings, nil
}

// Get returns a single listing.
func (s *ListingService) Get(ctx context.Context, id uint) (*models.Listing, error) {
	ctx = ensureContext(ctx)
	listing, err := findByID[models.Listing](s.db.WithContext(ctx), "listing", id)
	if err != nil {
		return nil, passThrough("listing service", err)
	}
	return listing, nil
}

// Approve marks a listing reviewed and approved. Removed listings cannot be approved.
func (s *ListingService) Approve(ctx context.Context, id uint) (*models.Listing, error) {
	return s.moderate(ctx, id, "approve", func(listing *models.Listing) (map[string]any, error) {
		if listing.Status == models.ListingRemoved {
			return nil, apperrors.NewInvalidState("listing %d has been removed", id)
		}
		return map[string]any{"reviewed": true, "approved": true}, nil
	})
}

// Hide takes an active listing out of the storefront.
func (s *ListingService) Hide(ctx context.Context, id uint) (*models.Listing, error) {
	return s.moderate(ctx, id, "hide", func(listing *models.Listing) (map[string]any, error) {
		if listing.Status != models.ListingActive {
			return nil, apperrors.NewInvalidState("only active listings can be hidden, listing %d is %s", id, listing.Status)
		}
		return map[string]any{"status": models.ListingHidden}, nil
	})
}

// Remove takes a listing down for a policy violation.
func (s *ListingService) Remove(ctx context.Context, id uint, reason string) (*models.Listing, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidation("violation reason is required")
	}
	return s.moderate(ctx, id, "remove", func(listing *models.Listing) (map[string]any, error) {
		if listing.Status == models.ListingRemoved {
			return nil, apperrors.NewInvalidState("listing %d is already removed", id)
		}
		return map[string]any{
			"status":           models.ListingRemoved,
			"reviewed":         true,
			"approved":         false,
			"featured":         false,
			"violation_reason": reason,
		}, nil
	})
}

// ToggleFeatured flips the featured flag. Removed listings cannot be featured.
func (s *ListingService) ToggleFeatured(ctx context.Context, id uint) (*models.Listing, error) {
	return s.moderate(ctx, id, "feature", func(listing *models.Listing) (map[string]any, error) {
		if !listing.Featured && listing.Status == models.ListingRemoved {
			return nil, apperrors.NewInvalidState("listing %d has been removed", id)
		}
		return map[string]any{"featured": !listing.Featured}, nil
	})
}

func (s *ListingService) moderate(ctx context.Context, id uint, action string, apply func(*models.Listing) (map[string]any, error)) (*models.Listing, error) {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	listing, err := updateRecord(ctx, s.db, "listing", id, apply)
	if err != nil {
		return nil, passThrough("listing service", err)
	}

	metrics.ModerationActions.WithLabelValues("listing", action).Inc()
	s.log.Info("listing moderated", zap.Uint("id", id), zap.String("action", action))
	return listing, nil
}
