package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(CodeNotFound, "request not found", http.StatusNotFound),
			want: "not_found: request not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("db error"), CodeConflict, "duplicate watcher", http.StatusConflict),
			want: "conflict: duplicate watcher: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(inner, CodeStorageError, "write failed", 500)

	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should match inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := ErrTaskAlreadyDecided()
	wrapped := fmt.Errorf("decide: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should return true for wrapped AppError")
	}
	if got.Code != CodeTaskAlreadyDecided {
		t.Errorf("Code = %q, want %q", got.Code, CodeTaskAlreadyDecided)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", ErrRequestNotFound(), http.StatusNotFound},
		{"BadRequest", BadRequest(CodeMissingFields, "title required"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized(CodeNotAuthenticated, "missing token"), http.StatusUnauthorized},
		{"Forbidden", ErrNotAuthorized(), http.StatusForbidden},
		{"Conflict", ErrRequestAlreadyDecided(), http.StatusConflict},
		{"Internal", Internal(CodeStorageError, "disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}
