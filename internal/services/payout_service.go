package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
	"github.com/charlesng35/marketadmin/pkg/logger"
	"github.com/charlesng35/marketadmin/pkg/metrics"
)

// PayoutRequestInput describes a new payout request.
type PayoutRequestInput struct {
	PayeeKind      string     `json:"payee_kind"`
	PayeeID        uint       `json:"payee_id"`
	PayeeName      string     `json:"payee_name"`
	Amount         float64    `json:"amount"`
	PaymentMethod  string     `json:"payment_method"`
	AccountDetails string     `json:"account_details"`
	RequestedAt    *time.Time `json:"requested_at"`
}

// PayoutFilter narrows List results by status and payee kind.
type PayoutFilter struct {
	Status    string
	PayeeKind string
}

// PayoutService owns payout requests and enforces the review state machine:
// pending -> approved and pending -> rejected, both terminal.
type PayoutService struct {
	mu  sync.Mutex
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

// NewPayoutService constructs a PayoutService.
func NewPayoutService(db *gorm.DB) (*PayoutService, error) {
	if db == nil {
		return nil, errors.New("payout service: db is required")
	}
	return &PayoutService{
		db:  db,
		log: logger.WithModule("payouts"),
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// List returns payout requests in request order.
func (s *PayoutService) List(ctx context.Context, filter PayoutFilter) ([]models.PayoutRequest, error) {
	ctx = ensureContext(ctx)

	status, byStatus, err := parseFilter("status", filter.Status, models.PayoutStatuses)
	if err != nil {
		return nil, err
	}
	kind, byKind, err := parseFilter("payee kind", filter.PayeeKind, models.PayeeKinds)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Order("id ASC")
	if byStatus {
		query = query.Where("status = ?", status)
	}
	if byKind {
		query = query.Where("payee_kind = ?", kind)
	}

	payouts := make([]models.PayoutRequest, 0)
	if err := query.Find(&payouts).Error; err != nil {
		return nil, fmt.Errorf("payout service: list payouts: %w", err)
	}
	return payouts, nil
}

// Get returns a single payout request.
func (s *PayoutService) Get(ctx context.Context, id uint) (*models.PayoutRequest, error) {
	ctx = ensureContext(ctx)
	payout, err := findByID[models.PayoutRequest](s.db.WithContext(ctx), "payout request", id)
	if err != nil {
		return nil, passThrough("payout service", err)
	}
	return payout, nil
}

// Request files a new pending payout request.
func (s *PayoutService) Request(ctx context.Context, input PayoutRequestInput) (*models.PayoutRequest, error) {
	ctx = ensureContext(ctx)

	kind, err := parseEnum("payee kind", input.PayeeKind, models.PayeeKinds, "")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.PayeeName)
	if name == "" {
		return nil, apperrors.NewValidation("payee name is required")
	}
	if input.Amount < 0 {
		return nil, apperrors.NewValidation("amount must not be negative")
	}

	requestedAt := s.now()
	if input.RequestedAt != nil && !input.RequestedAt.IsZero() {
		requestedAt = input.RequestedAt.UTC()
	}

	payout := models.PayoutRequest{
		PayeeKind:      kind,
		PayeeID:        input.PayeeID,
		PayeeName:      name,
		Amount:         input.Amount,
		RequestedAt:    requestedAt,
		PaymentMethod:  strings.TrimSpace(input.PaymentMethod),
		AccountDetails: strings.TrimSpace(input.AccountDetails),
		Status:         models.PayoutPending,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Create(&payout).Error; err != nil {
		return nil, fmt.Errorf("payout service: create payout: %w", err)
	}

	s.log.Info("payout requested",
		zap.Uint("id", payout.ID),
		zap.String("payee_kind", string(payout.PayeeKind)),
		zap.Float64("amount", payout.Amount),
	)
	return &payout, nil
}

// Approve moves a pending request to approved and stamps the approval date.
func (s *PayoutService) Approve(ctx context.Context, id uint) (*models.PayoutRequest, error) {
	approvedAt := s.now()
	return s.decide(ctx, id, models.PayoutApproved, func(*models.PayoutRequest) (map[string]any, error) {
		return map[string]any{
			"status":      models.PayoutApproved,
			"approved_at": approvedAt,
		}, nil
	})
}

// Reject moves a pending request to rejected. The trimmed reason is stored and must not be
// blank. A decided request fails with InvalidState whatever the reason.
func (s *PayoutService) Reject(ctx context.Context, id uint, reason string) (*models.PayoutRequest, error) {
	reason = strings.TrimSpace(reason)
	return s.decide(ctx, id, models.PayoutRejected, func(*models.PayoutRequest) (map[string]any, error) {
		if reason == "" {
			return nil, apperrors.NewValidation("rejection reason is required")
		}
		return map[string]any{
			"status":           models.PayoutRejected,
			"rejection_reason": reason,
		}, nil
	})
}

// decide applies a review decision to a pending request. apply runs only after the pending
// check and returns the column updates.
func (s *PayoutService) decide(ctx context.Context, id uint, decision models.PayoutStatus, apply func(*models.PayoutRequest) (map[string]any, error)) (*models.PayoutRequest, error) {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var decided models.PayoutRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payout, err := findByID[models.PayoutRequest](tx, "payout request", id)
		if err != nil {
			return err
		}
		if payout.Status != models.PayoutPending {
			return apperrors.NewInvalidState("payout request %d is already %s", id, payout.Status)
		}
		updates, err := apply(payout)
		if err != nil {
			return err
		}
		if err := tx.Model(payout).Updates(updates).Error; err != nil {
			return fmt.Errorf("update payout: %w", err)
		}
		return tx.First(&decided, id).Error
	})
	if err != nil {
		return nil, passThrough("payout service", err)
	}

	metrics.PayoutDecisions.WithLabelValues(string(decided.PayeeKind), string(decision)).Inc()
	s.log.Info("payout reviewed",
		zap.Uint("id", id),
		zap.String("decision", string(decision)),
		zap.Float64("amount", decided.Amount),
	)
	return &decided, nil
}
