package errorutil

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"unauthorized", NewUnauthorized("unauthorized"), "UNAUTHORIZED", http.StatusUnauthorized},
		{"forbidden", NewForbidden("insufficient role"), "FORBIDDEN", http.StatusForbidden},
		{"conflict", NewConflict("duplicate", nil), "CONFLICT", http.StatusConflict},
		{"no rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"wrapped domain error", errors.Join(errors.New("ctx"), NewValidationError("bad", nil)), "VALIDATION_FAILED", http.StatusBadRequest},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tc.wantCode)
			}
			if got.HTTPStatus != tc.wantStatus {
				t.Errorf("status = %d, want %d", got.HTTPStatus, tc.wantStatus)
			}
		})
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if got := ToDomainError(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewInternalError(cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected Unwrap to expose the cause")
	}
}
