package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
)

// DashboardStats are the headline counters of the operator dashboard.
type DashboardStats struct {
	TotalUsers          int64   `json:"total_users"`
	ActiveUsers         int64   `json:"active_users"`
	TotalListings       int64   `json:"total_listings"`
	ActiveListings      int64   `json:"active_listings"`
	CompletedSales      int64   `json:"completed_sales"`
	PlatformRevenue     float64 `json:"platform_revenue"`
	PendingPayouts      int64   `json:"pending_payouts"`
	PendingPayoutAmount float64 `json:"pending_payout_amount"`
	OpenDisputes        int64   `json:"open_disputes"`
	ResolvedDisputes    int64   `json:"resolved_disputes"`
	ActiveNotifications int64   `json:"active_notifications"`
}

// DashboardService computes read-only aggregates across every collection.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(db *gorm.DB) (*DashboardService, error) {
	if db == nil {
		return nil, errors.New("dashboard service: db is required")
	}
	return &DashboardService{db: db}, nil
}

// Stats computes the dashboard counters.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	ctx = ensureContext(ctx)
	db := s.db.WithContext(ctx)

	stats := &DashboardStats{}
	counts := []struct {
		name  string
		model any
		where []any
		dest  *int64
	}{
		{"users", &models.User{}, nil, &stats.TotalUsers},
		{"active users", &models.User{}, []any{"status = ?", models.UserActive}, &stats.ActiveUsers},
		{"listings", &models.Listing{}, nil, &stats.TotalListings},
		{"active listings", &models.Listing{}, []any{"status = ?", models.ListingActive}, &stats.ActiveListings},
		{"completed sales", &models.Transaction{}, []any{"status = ?", models.TransactionCompleted}, &stats.CompletedSales},
		{"pending payouts", &models.PayoutRequest{}, []any{"status = ?", models.PayoutPending}, &stats.PendingPayouts},
		{"open disputes", &models.Dispute{}, []any{"status = ?", models.DisputeOpen}, &stats.OpenDisputes},
		{"resolved disputes", &models.Dispute{}, []any{"status = ?", models.DisputeResolved}, &stats.ResolvedDisputes},
		{"active notifications", &models.Notification{}, []any{"active = ?", true}, &stats.ActiveNotifications},
	}
	for _, c := range counts {
		query := db.Model(c.model)
		if len(c.where) > 0 {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("dashboard service: count %s: %w", c.name, err)
		}
	}

	sums := []struct {
		name   string
		model  any
		column string
		status any
		dest   *float64
	}{
		{"platform revenue", &models.Transaction{}, "platform_fee", models.TransactionCompleted, &stats.PlatformRevenue},
		{"pending payout amount", &models.PayoutRequest{}, "amount", models.PayoutPending, &stats.PendingPayoutAmount},
	}
	for _, sum := range sums {
		if err := db.Model(sum.model).
			Select("COALESCE(SUM("+sum.column+"), 0)").
			Where("status = ?", sum.status).
			Scan(sum.dest).Error; err != nil {
			return nil, fmt.Errorf("dashboard service: sum %s: %w", sum.name, err)
		}
	}

	return stats, nil
}
