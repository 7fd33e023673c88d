package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIncludesInternal(t *testing.T) {
	internal := stdErrors.New("boom")
	err := Wrap(internal, "failed")

	if err.Error() != "failed: boom" {
		t.Fatalf("unexpected error string: %s", err.Error())
	}
}

func TestWithInternalCopies(t *testing.T) {
	base := New("TEST", "test", 400)
	with := base.WithInternal(stdErrors.New("oops"))

	if with == base {
		t.Fatal("expected WithInternal to return a copy")
	}
	if base.Internal != nil {
		t.Fatal("expected original error to remain unchanged")
	}
	if with.Internal == nil {
		t.Fatal("expected internal error to be set")
	}
}

func TestFromError(t *testing.T) {
	appErr := ErrNotFound
	if out := FromError(appErr); out != appErr {
		t.Fatal("expected FromError to return the same AppError instance")
	}

	raw := stdErrors.New("raw")
	out := FromError(raw)
	if out.Code != ErrInternalServer.Code {
		t.Fatalf("expected internal server code, got %s", out.Code)
	}
	if out.Internal == nil {
		t.Fatal("expected internal error to be attached")
	}
}

func TestKindConstructorsMatchSentinels(t *testing.T) {
	cases := []struct {
		err    error
		kind   *AppError
		status int
	}{
		{NewValidation("title is required"), ErrValidation, http.StatusUnprocessableEntity},
		{NewNotFound("payout", 7), ErrNotFound, http.StatusNotFound},
		{NewInvalidState("payout %d is %s", 7, "approved"), ErrInvalidState, http.StatusConflict},
		{NewBadRequest("invalid payload"), ErrBadRequest, http.StatusBadRequest},
	}

	for _, tc := range cases {
		if !stdErrors.Is(tc.err, tc.kind) {
			t.Fatalf("expected %v to match %s", tc.err, tc.kind.Code)
		}
		if got := FromError(tc.err).StatusCode; got != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.kind.Code, got, tc.status)
		}
	}

	if stdErrors.Is(NewValidation("x"), ErrNotFound) {
		t.Fatal("validation error must not match not found")
	}
}

func TestIsSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("dispute service: %w", NewInvalidState("dispute is closed"))
	if !stdErrors.Is(wrapped, ErrInvalidState) {
		t.Fatal("expected wrapped error to match ErrInvalidState")
	}
	if msg := FromError(wrapped).Message; msg != "dispute is closed" {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestNotFoundMessageNamesEntity(t *testing.T) {
	if msg := NewNotFound("notification", 3).Message; msg != "notification 3 not found" {
		t.Fatalf("unexpected message: %s", msg)
	}
}
