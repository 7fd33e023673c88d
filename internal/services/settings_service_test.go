package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/marketadmin/internal/database"
	"github.com/charlesng35/marketadmin/internal/database/testutil"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
)

func TestSettingsServiceFees(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewSettingsService(db, FeeSettings{PlatformPercent: 5, TransactionFee: 50})
	require.NoError(t, err)
	ctx := context.Background()

	fees, err := svc.Fees(ctx)
	require.NoError(t, err)
	require.Equal(t, FeeSettings{PlatformPercent: 5, TransactionFee: 50}, fees)
	require.InDelta(t, 550, fees.FeeFor(10000), 0.001)

	_, err = svc.UpdateFees(ctx, FeeSettings{PlatformPercent: 120})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.UpdateFees(ctx, FeeSettings{PlatformPercent: 3, TransactionFee: -5})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UpdateFees(ctx, FeeSettings{PlatformPercent: 7.5, TransactionFee: 25})
	require.NoError(t, err)
	_, err = svc.UpdateFees(ctx, FeeSettings{PlatformPercent: 6, TransactionFee: 0})
	require.NoError(t, err)

	fees, err = svc.Fees(ctx)
	require.NoError(t, err)
	require.Equal(t, FeeSettings{PlatformPercent: 6, TransactionFee: 0}, fees)

	_, err = NewSettingsService(db, FeeSettings{PlatformPercent: -1})
	require.Error(t, err)
}

func TestSettingsServiceTerms(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewSettingsService(db, FeeSettings{PlatformPercent: 5, TransactionFee: 50})
	require.NoError(t, err)
	ctx := context.Background()

	terms, err := svc.Terms(ctx)
	require.NoError(t, err)
	require.Equal(t, database.DefaultTermsVersion, terms.Version)
	require.Contains(t, terms.Content, "TERMS AND CONDITIONS")

	_, err = svc.UpdateTerms(ctx, "   ")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	updated, err := svc.UpdateTerms(ctx, "New terms")
	require.NoError(t, err)
	require.Equal(t, "2.2", updated.Version)
	require.Equal(t, "New terms", updated.Content)
}

func TestNextMinorVersion(t *testing.T) {
	require.Equal(t, "2.2", nextMinorVersion("2.1"))
	require.Equal(t, "1.10", nextMinorVersion("1.9"))
	require.Equal(t, "1.0", nextMinorVersion(""))
	require.Equal(t, "1.0", nextMinorVersion("draft"))
}

func TestDashboardServiceStats(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewDashboardService(db)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 5, stats.TotalUsers)
	require.EqualValues(t, 3, stats.ActiveUsers)
	require.EqualValues(t, 5, stats.TotalListings)
	require.EqualValues(t, 3, stats.ActiveListings)
	require.EqualValues(t, 2, stats.CompletedSales)
	require.InDelta(t, 1000, stats.PlatformRevenue, 0.001)
	require.EqualValues(t, 4, stats.PendingPayouts)
	require.InDelta(t, 80850, stats.PendingPayoutAmount, 0.001)
	require.EqualValues(t, 2, stats.OpenDisputes)
	require.EqualValues(t, 1, stats.ResolvedDisputes)
	require.EqualValues(t, 3, stats.ActiveNotifications)
}
