package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/marketadmin/internal/handlers/testutil"
	"github.com/charlesng35/marketadmin/internal/models"
)

func TestPayoutHandlerReviewFlow(t *testing.T) {
	env := testutil.NewEnv(t)

	var pending []models.PayoutRequest
	testutil.MustSucceed(env, http.StatusOK, http.MethodGet, "/api/payouts?status=pending", nil, &pending)
	require.Len(t, pending, 4)

	var approved models.PayoutRequest
	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/payouts/1/approve", nil, &approved)
	require.Equal(t, models.PayoutApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	testutil.MustFail(env, http.StatusConflict, "INVALID_STATE", http.MethodPost, "/api/payouts/1/reject", map[string]string{"reason": "late"})
	testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodPost, "/api/payouts/3/reject", map[string]string{"reason": "  "})

	var rejected models.PayoutRequest
	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/payouts/3/reject", map[string]string{"reason": " Invalid account "}, &rejected)
	require.Equal(t, models.PayoutRejected, rejected.Status)
	require.Equal(t, "Invalid account", rejected.RejectionReason)

	testutil.MustFail(env, http.StatusNotFound, "NOT_FOUND", http.MethodPost, "/api/payouts/42/approve", nil)
	testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodGet, "/api/payouts?payee_kind=buyer", nil)
}

func TestPayoutHandlerRequest(t *testing.T) {
	env := testutil.NewEnv(t)

	var created models.PayoutRequest
	testutil.MustSucceed(env, http.StatusCreated, http.MethodPost, "/api/payouts", map[string]any{
		"payee_kind": "affiliate",
		"payee_id":   1,
		"payee_name": "Omar Farouk",
		"amount":     1200,
	}, &created)
	require.Equal(t, models.PayoutPending, created.Status)
	require.Equal(t, models.PayeeAffiliate, created.PayeeKind)

	resp := testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodPost, "/api/payouts", map[string]any{
		"payee_kind": "affiliate",
		"payee_name": "Omar Farouk",
		"amount":     -5,
	})
	require.Contains(t, resp.Error.Message, "amount must be at least 0")
}

func TestDisputeHandlerLifecycle(t *testing.T) {
	env := testutil.NewEnv(t)

	var opened models.Dispute
	testutil.MustSucceed(env, http.StatusCreated, http.MethodPost, "/api/disputes", map[string]any{
		"type":        "delivery_issue",
		"buyer":       "Khalid Abdullah",
		"seller":      "Fatima Hassan",
		"item":        "Art Collection",
		"description": "Parcel lost in transit",
	}, &opened)
	require.Equal(t, models.DisputeOpen, opened.Status)
	require.NotEmpty(t, opened.CaseNumber)

	var annotated models.Dispute
	testutil.MustSucceed(env, http.StatusOK, http.MethodPut, "/api/disputes/1/notes", map[string]string{"notes": "Contacted seller"}, &annotated)
	require.Equal(t, "Contacted seller", annotated.AdminNotes)

	testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodPost, "/api/disputes/1/resolve", map[string]string{"resolution": ""})

	var resolved models.Dispute
	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/disputes/1/resolve", map[string]string{"resolution": "Refund issued"}, &resolved)
	require.Equal(t, models.DisputeResolved, resolved.Status)

	var closed models.Dispute
	testutil.MustSucceed(env, http.StatusOK, http.MethodPost, "/api/disputes/1/close", nil, &closed)
	require.Equal(t, models.DisputeClosed, closed.Status)

	testutil.MustFail(env, http.StatusConflict, "INVALID_STATE", http.MethodPost, "/api/disputes/1/close", nil)
	testutil.MustFail(env, http.StatusConflict, "INVALID_STATE", http.MethodPut, "/api/disputes/1/notes", map[string]string{"notes": "late"})

	var open []models.Dispute
	testutil.MustSucceed(env, http.StatusOK, http.MethodGet, "/api/disputes?status=open", nil, &open)
	require.Len(t, open, 2)

	testutil.MustFail(env, http.StatusUnprocessableEntity, "VALIDATION_FAILED", http.MethodGet, "/api/disputes?status=pending", nil)
}
