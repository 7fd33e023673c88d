package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/marketadmin/internal/database/testutil"
	"github.com/charlesng35/marketadmin/internal/models"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
)

func newDisputeService(t *testing.T) *DisputeService {
	t.Helper()
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewDisputeService(db)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestDisputeServiceOpenAssignsCaseNumbers(t *testing.T) {
	svc := newDisputeService(t)
	ctx := context.Background()

	input := OpenDisputeInput{
		Type:        "delivery_issue",
		Buyer:       "Khalid Abdullah",
		Seller:      "Fatima Hassan",
		Item:        "Art Collection",
		Description: "Package arrived damaged",
	}
	first, err := svc.Open(ctx, input)
	require.NoError(t, err)
	require.Equal(t, "DISP-2024-004", first.CaseNumber)
	require.Equal(t, models.DisputeOpen, first.Status)

	second, err := svc.Open(ctx, input)
	require.NoError(t, err)
	require.Equal(t, "DISP-2024-005", second.CaseNumber)

	svc.now = func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) }
	third, err := svc.Open(ctx, input)
	require.NoError(t, err)
	require.Equal(t, "DISP-2025-001", third.CaseNumber)

	_, err = svc.Open(ctx, OpenDisputeInput{Type: "fraud", Buyer: "a", Seller: "b", Item: "c"})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Open(ctx, OpenDisputeInput{Type: "payment_dispute", Seller: "b", Item: "c"})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDisputeServiceResolveAndClose(t *testing.T) {
	svc := newDisputeService(t)
	ctx := context.Background()

	open, err := svc.List(ctx, "open")
	require.NoError(t, err)
	require.Len(t, open, 2)
	target := open[0]

	_, err = svc.Resolve(ctx, target.ID, "  ")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	resolved, err := svc.Resolve(ctx, target.ID, "Seller refunded the buyer")
	require.NoError(t, err)
	require.Equal(t, models.DisputeResolved, resolved.Status)
	require.Equal(t, "Seller refunded the buyer", resolved.Resolution)
	require.NotNil(t, resolved.ResolvedAt)

	again, err := svc.Resolve(ctx, target.ID, "Partial refund agreed")
	require.NoError(t, err)
	require.Equal(t, "Partial refund agreed", again.Resolution)

	closed, err := svc.Close(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, models.DisputeClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)
	require.Equal(t, "Partial refund agreed", closed.Resolution)

	_, err = svc.Close(ctx, target.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidState)
	_, err = svc.Resolve(ctx, target.ID, "late")
	require.ErrorIs(t, err, apperrors.ErrInvalidState)
	_, err = svc.Annotate(ctx, target.ID, "late note")
	require.ErrorIs(t, err, apperrors.ErrInvalidState)

	current, err := svc.Get(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, "Partial refund agreed", current.Resolution)
}

func TestDisputeServiceCloseWithoutResolution(t *testing.T) {
	svc := newDisputeService(t)
	ctx := context.Background()

	open, err := svc.List(ctx, "open")
	require.NoError(t, err)

	closed, err := svc.Close(ctx, open[1].ID)
	require.NoError(t, err)
	require.Equal(t, models.DisputeClosed, closed.Status)
	require.Empty(t, closed.Resolution)
}

func TestDisputeServiceAnnotate(t *testing.T) {
	svc := newDisputeService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	require.NoError(t, err)

	annotated, err := svc.Annotate(ctx, all[0].ID, "Requested authenticity certificate")
	require.NoError(t, err)
	require.Equal(t, "Requested authenticity certificate", annotated.AdminNotes)
	require.Equal(t, models.DisputeOpen, annotated.Status)

	_, err = svc.Annotate(ctx, 404, "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDisputeServiceListPreservesOrder(t *testing.T) {
	svc := newDisputeService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "DISP-2024-001", all[0].CaseNumber)
	require.Equal(t, "DISP-2024-003", all[2].CaseNumber)

	open, err := svc.List(ctx, "open")
	require.NoError(t, err)
	require.Equal(t, []string{"DISP-2024-001", "DISP-2024-003"}, []string{open[0].CaseNumber, open[1].CaseNumber})

	_, err = svc.List(ctx, "escalated")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}
