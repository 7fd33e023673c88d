package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
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

// OpenDisputeInput describes a newly filed dispute.
type OpenDisputeInput struct {
	Type        string `json:"type"`
	Buyer       string `json:"buyer"`
	Seller      string `json:"seller"`
	Item        string `json:"item"`
	Description string `json:"description"`
}

// DisputeService owns disputes. Open and resolved disputes accept notes and resolutions;
// closed disputes are terminal.
type DisputeService struct {
	mu  sync.Mutex
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

// NewDisputeService constructs a DisputeService.
func NewDisputeService(db *gorm.DB) (*DisputeService, error) {
	if db == nil {
		return nil, errors.New("dispute service: db is required")
	}
	return &DisputeService{
		db:  db,
		log: logger.WithModule("disputes"),
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// List returns disputes in filing order, optionally narrowed to one status.
func (s *DisputeService) List(ctx context.Context, status string) ([]models.Dispute, error) {
	ctx = ensureContext(ctx)

	selected, apply, err := parseFilter("status", status, models.DisputeStatuses)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Order("id ASC")
	if apply {
		query = query.Where("status = ?", selected)
	}

	disputes := make([]models.Dispute, 0)
	if err := query.Find(&disputes).Error; err != nil {
		return nil, fmt.Errorf("dispute service: list disputes: %w", err)
	}
	return disputes, nil
}

// Get returns a single dispute.
func (s *DisputeService) Get(ctx context.Context, id uint) (*models.Dispute, error) {
	ctx = ensureContext(ctx)
	dispute, err := findByID[models.Dispute](s.db.WithContext(ctx), "dispute", id)
	if err != nil {
		return nil, passThrough("dispute service", err)
	}
	return dispute, nil
}

// Open files a new dispute and assigns the next case number for the current year.
func (s *DisputeService) Open(ctx context.Context, input OpenDisputeInput) (*models.Dispute, error) {
	ctx = ensureContext(ctx)

	kind, err := parseEnum("dispute type", input.Type, models.DisputeTypes, "")
	if err != nil {
		return nil, err
	}
	dispute := models.Dispute{
		Type:        kind,
		Buyer:       strings.TrimSpace(input.Buyer),
		Seller:      strings.TrimSpace(input.Seller),
		Item:        strings.TrimSpace(input.Item),
		Description: strings.TrimSpace(input.Description),
		Status:      models.DisputeOpen,
	}
	switch {
	case dispute.Buyer == "":
		return nil, apperrors.NewValidation("buyer is required")
	case dispute.Seller == "":
		return nil, apperrors.NewValidation("seller is required")
	case dispute.Item == "":
		return nil, apperrors.NewValidation("item is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		caseNumber, err := nextCaseNumber(tx, s.now().Year())
		if err != nil {
			return err
		}
		dispute.CaseNumber = caseNumber
		if err := tx.Create(&dispute).Error; err != nil {
			if isUniqueConstraintError(err) {
				return apperrors.NewInvalidState("case number %s already exists", caseNumber)
			}
			return fmt.Errorf("create dispute: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough("dispute service", err)
	}

	metrics.DisputeTransitions.WithLabelValues(string(models.DisputeOpen)).Inc()
	s.log.Info("dispute opened", zap.Uint("id", dispute.ID), zap.String("case_number", dispute.CaseNumber))
	return &dispute, nil
}

// Annotate replaces the admin notes of a dispute that is not closed.
func (s *DisputeService) Annotate(ctx context.Context, id uint, notes string) (*models.Dispute, error) {
	return s.transition(ctx, id, "annotate", func(dispute *models.Dispute) (map[string]any, error) {
		return map[string]any{"admin_notes": strings.TrimSpace(notes)}, nil
	})
}

// Resolve records the resolution text and marks the dispute resolved. Resolving an already
// resolved dispute replaces its resolution.
func (s *DisputeService) Resolve(ctx context.Context, id uint, resolution string) (*models.Dispute, error) {
	resolution = strings.TrimSpace(resolution)
	return s.transition(ctx, id, "resolve", func(dispute *models.Dispute) (map[string]any, error) {
		if resolution == "" {
			return nil, apperrors.NewValidation("resolution is required")
		}
		return map[string]any{
			"status":      models.DisputeResolved,
			"resolution":  resolution,
			"resolved_at": s.now(),
		}, nil
	})
}

// Close marks the dispute closed, with or without a resolution.
func (s *DisputeService) Close(ctx context.Context, id uint) (*models.Dispute, error) {
	return s.transition(ctx, id, "close", func(dispute *models.Dispute) (map[string]any, error) {
		return map[string]any{
			"status":    models.DisputeClosed,
			"closed_at": s.now(),
		}, nil
	})
}

// transition loads the dispute, rejects commands on closed disputes and applies the updates
// returned by apply in one transaction.
func (s *DisputeService) transition(ctx context.Context, id uint, action string, apply func(*models.Dispute) (map[string]any, error)) (*models.Dispute, error) {
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated models.Dispute
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dispute, err := findByID[models.Dispute](tx, "dispute", id)
		if err != nil {
			return err
		}
		if dispute.Status == models.DisputeClosed {
			return apperrors.NewInvalidState("dispute %s is closed", dispute.CaseNumber)
		}
		updates, err := apply(dispute)
		if err != nil {
			return err
		}
		if err := tx.Model(dispute).Updates(updates).Error; err != nil {
			return fmt.Errorf("%s dispute: %w", action, err)
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, passThrough("dispute service", err)
	}

	if action != "annotate" {
		metrics.DisputeTransitions.WithLabelValues(string(updated.Status)).Inc()
	}
	s.log.Info("dispute updated",
		zap.Uint("id", id),
		zap.String("action", action),
		zap.String("status", string(updated.Status)),
	)
	return &updated, nil
}

func nextCaseNumber(tx *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("DISP-%d-", year)

	var existing []string
	if err := tx.Model(&models.Dispute{}).
		Where("case_number LIKE ?", prefix+"%").
		Pluck("case_number", &existing).Error; err != nil {
		return "", fmt.Errorf("load case numbers: %w", err)
	}

	highest := 0
	for _, caseNumber := range existing {
		seq, err := strconv.Atoi(strings.TrimPrefix(caseNumber, prefix))
		if err == nil && seq > highest {
			highest = seq
		}
	}
	return fmt.Sprintf("%s%03d", prefix, highest+1), nil
}
