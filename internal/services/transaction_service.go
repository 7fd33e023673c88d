package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
)

// TransactionService exposes the read-only marketplace transaction ledger.
type TransactionService struct {
	db *gorm.DB
}

// NewTransactionService constructs a TransactionService.
func NewTransactionService(db *gorm.DB) (*TransactionService, error) {
	if db == nil {
		return nil, errors.New("transaction service: db is required")
	}
	return &TransactionService{db: db}, nil
}

// List returns transactions, most recent first, optionally narrowed to one type.
func (s *TransactionService) List(ctx context.Context, kind string) ([]models.Transaction, error) {
	ctx = ensureContext(ctx)

	selected, apply, err := parseFilter("type", kind, models.TransactionTypes)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Order("occurred_at DESC").Order("id ASC")
	if apply {
		query = query.Where("type = ?", selected)
	}

	transactions := make([]models.Transaction, 0)
	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("transaction service: list transactions: %w", err)
	}
	return transactions, nil
}

// FeeSummary aggregates the platform fees earned on completed transactions.
type FeeSummary struct {
	Completed  int64   `json:"completed"`
	TotalFees  float64 `json:"total_fees"`
	AverageFee float64 `json:"average_fee"`
}

// FeeSummary totals platform fees over completed transactions.
func (s *TransactionService) FeeSummary(ctx context.Context) (*FeeSummary, error) {
	ctx = ensureContext(ctx)

	var row struct {
		Completed int64
		TotalFees float64
	}
	if err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COUNT(*) AS completed, COALESCE(SUM(platform_fee), 0) AS total_fees").
		Where("status = ?", models.TransactionCompleted).
		Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("transaction service: summarise fees: %w", err)
	}

	summary := &FeeSummary{Completed: row.Completed, TotalFees: row.TotalFees}
	if row.Completed > 0 {
		summary.AverageFee = row.TotalFees / float64(row.Completed)
	}
	return summary, nil
}
