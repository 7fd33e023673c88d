package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/marketadmin/internal/handlers/testutil"
	"github.com/charlesng35/marketadmin/internal/models"
	"github.com/charlesng35/marketadmin/internal/services"
)

func TestUserHandlerStatusCommands(t *testing.T) {
	env := testutil.NewEnv(t)

	var user models.User
	testutil.MustSucceed(env, http.StatusOK, http.MethodGet, "/api/users/1", nil, &user)
	require.Len(t, user.History, 2)

	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/users/1/suspend", nil, &user)
	require.Equal(t, models.UserSuspended, user.Status)

	testutil.MustFail(env, http.StatusConflict, "INVALID_STATE", http.MethodPost, "/api/users/1/suspend", nil)

	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/users/1/restore", nil, &user)
	require.Equal(t, models.UserActive, user.Status)

	testutil.MustSucceed[any](env, http.StatusOK, http.MethodDelete, "/api/users/5", nil, nil)
	testutil.MustFail(env, http.StatusNotFound, "NOT_FOUND", http.MethodGet, "/api/users/5", nil)

	var suspended []models.User
	testutil.MustSucceed(env, http.StatusOK, http.MethodGet, "/api/users?status=suspended", nil, &suspended)
	require.Len(t, suspended, 1)
}

func TestListingHandlerModeration(t *testing.T) {
	env := testutil.NewEnv(t)

	var listing models.Listing
	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/listings/2/approve", nil, &listing)
	require.True(t, listing.Approved)
	require.True(t, listing.Reviewed)

	testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodPost, "/api/listings/2/remove", map[string]string{"reason": ""})
	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/listings/2/remove", map[string]string{"reason": "Prohibited item"}, &listing)
	require.Equal(t, models.ListingRemoved, listing.Status)
	require.Equal(t, "Prohibited item", listing.ViolationReason)

	testutil.MustFail(env, http.StatusConflict, "INVALID_STATE", http.MethodPost, "/api/listings/4/approve", nil)
	testutil.MustFail(env, http.StatusConflict, "INVALID_STATE", http.MethodPost, "/api/listings/3/hide", nil)

	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/listings/1/feature", nil, &listing)
	require.False(t, listing.Featured)
}

func TestAffiliateHandlerCommission(t *testing.T) {
	env := testutil.NewEnv(t)

	var affiliate models.Affiliate
	testutil.MustSucceed(env, http.StatusOK, http.MethodPut, "/api/affiliates/1/commission", map[string]float64{"commission_rate": 12.5}, &affiliate)
	require.Equal(t, 12.5, affiliate.CommissionRate)

	testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodPut, "/api/affiliates/1/commission", map[string]float64{"commission_rate": 120})
	testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodPut, "/api/affiliates/1/commission", map[string]any{})

	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/affiliates/3/toggle", nil, &affiliate)
	require.Equal(t, models.AffiliateActive, affiliate.Status)
}

func TestLedgerHandlers(t *testing.T) {
	env := testutil.NewEnv(t)

	var offers []models.Transaction
	testutil.MustSucceed(env, http.StatusOK, http.MethodGet, "/api/transactions?type=offer", nil, &offers)
	require.Len(t, offers, 2)

	var summary services.FeeSummary
	testutil.MustSucceed(env, http.StatusOK, http.MethodGet, "/api/transactions/fees", nil, &summary)
	require.EqualValues(t, 2, summary.Completed)
	require.InDelta(t, 1000, summary.TotalFees, 0.001)

	var fees services.FeeSettings
	testutil.MustSucceed(env, http.StatusOK, http.MethodGet, "/api/settings/fees", nil, &fees)
	require.Equal(t, services.FeeSettings{PlatformPercent: 5, TransactionFee: 50}, fees)

	testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodPut, "/api/settings/fees", map[string]float64{
		"platform_percent": 101,
		"transaction_fee":  10,
	})

	var terms services.Terms
	testutil.MustSucceed(env, http.StatusOK, http.MethodPut, "/api/settings/terms", map[string]string{"content": "Updated terms"}, &terms)
	require.Equal(t, "2.2", terms.Version)

	var stats services.DashboardStats
	testutil.MustSucceed(env, http.StatusOK, http.MethodGet, "/api/dashboard", nil, &stats)
	require.EqualValues(t, 4, stats.PendingPayouts)
	require.EqualValues(t, 2, stats.OpenDisputes)
}
