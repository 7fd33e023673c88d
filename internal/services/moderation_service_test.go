package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/marketadmin/internal/database/testutil"
	"github.com/charlesng35/marketadmin/internal/models"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
)

func TestUserServiceStatusTransitions(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewUserService(db)
	require.NoError(t, err)
	ctx := context.Background()

	active, err := svc.List(ctx, "active")
	require.NoError(t, err)
	require.Len(t, active, 3)
	member := active[0]

	suspended, err := svc.Suspend(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, models.UserSuspended, suspended.Status)

	_, err = svc.Suspend(ctx, member.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)

	deactivated, err := svc.Deactivate(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, models.UserDeactivated, deactivated.Status)

	restored, err := svc.Restore(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, models.UserActive, restored.Status)

	_, err = svc.Restore(ctx, member.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = svc.List(ctx, "banned")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUserServiceGetAndDelete(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewUserService(db)
	require.NoError(t, err)
	ctx := context.Background()

	user, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Ahmed Al-Saud", user.Name)
	require.Len(t, user.History, 2)
	require.Equal(t, "Luxury Watch", user.History[0].Item)

	require.NoError(t, svc.Delete(ctx, user.ID))
	require.ErrorIs(t, svc.Delete(ctx, user.ID), apperrors.ErrNotFound)

	var history int64
	require.NoError(t, db.Model(&models.AccountActivity{}).Where("user_id = ?", user.ID).Count(&history).Error)
	require.Zero(t, history)

	_, err = svc.Get(ctx, user.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListingServiceModeration(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewListingService(db)
	require.NoError(t, err)
	ctx := context.Background()

	active, err := svc.List(ctx, "active")
	require.NoError(t, err)
	require.Len(t, active, 3)

	pending := active[1]
	require.False(t, pending.Approved)

	approved, err := svc.Approve(ctx, pending.ID)
	require.NoError(t, err)
	require.True(t, approved.Reviewed)
	require.True(t, approved.Approved)

	featured, err := svc.ToggleFeatured(ctx, pending.ID)
	require.NoError(t, err)
	require.True(t, featured.Featured)

	hidden, err := svc.Hide(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, models.ListingHidden, hidden.Status)

	_, err = svc.Hide(ctx, pending.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = svc.Remove(ctx, pending.ID, " ")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	removed, err := svc.Remove(ctx, pending.ID, "Counterfeit goods")
	require.NoError(t, err)
	require.Equal(t, models.ListingRemoved, removed.Status)
	require.Equal(t, "Counterfeit goods", removed.ViolationReason)
	require.False(t, removed.Featured)
	require.False(t, removed.Approved)

	_, err = svc.Remove(ctx, pending.ID, "again")
	require.ErrorIs(t, err, apperrors.ErrInvalidState)
	_, err = svc.Approve(ctx, pending.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)
	_, err = svc.ToggleFeatured(ctx, pending.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = svc.Get(ctx, 999)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAffiliateServiceToggleAndCommission(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewAffiliateService(db)
	require.NoError(t, err)
	ctx := context.Background()

	deactivated, err := svc.List(ctx, "deactivated")
	require.NoError(t, err)
	require.Len(t, deactivated, 1)

	toggled, err := svc.ToggleStatus(ctx, deactivated[0].ID)
	require.NoError(t, err)
	require.Equal(t, models.AffiliateActive, toggled.Status)

	toggled, err = svc.ToggleStatus(ctx, deactivated[0].ID)
	require.NoError(t, err)
	require.Equal(t, models.AffiliateDeactivated, toggled.Status)

	updated, err := svc.UpdateCommission(ctx, 1, 12.5)
	require.NoError(t, err)
	require.InDelta(t, 12.5, updated.CommissionRate, 0.0001)

	zero, err := svc.UpdateCommission(ctx, 1, 0)
	require.NoError(t, err)
	require.Zero(t, zero.CommissionRate)

	_, err = svc.UpdateCommission(ctx, 1, 101)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.UpdateCommission(ctx, 1, -1)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.UpdateCommission(ctx, 99, 10)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionServiceListAndFees(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewTransactionService(db)
	require.NoError(t, err)
	ctx := context.Background()

	all, err := svc.List(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "Vintage Rolex Watch", all[0].Item)

	offers, err := svc.List(ctx, "offer")
	require.NoError(t, err)
	require.Len(t, offers, 2)

	_, err = svc.List(ctx, "refund")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	summary, err := svc.FeeSummary(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, summary.Completed)
	require.InDelta(t, 1000, summary.TotalFees, 0.001)
	require.InDelta(t, 500, summary.AverageFee, 0.001)
}
