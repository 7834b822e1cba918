package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "property not found",
			err:        errors.New("property not found: id=42"),
			wantCode:   ErrCodePropertyNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "upstream failure",
			err:        errors.New("upstream returned 502 Bad Gateway"),
			wantCode:   ErrCodeUpstreamUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "invalid input",
			err:        errors.New("invalid page parameter"),
			wantCode:   ErrCodeInvalidParameters,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error",
			err:        errors.New("something exploded"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := MapError(tt.err)
			if appErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
			if appErr.HTTPStatus != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, appErr.HTTPStatus)
			}
			if appErr.UserMessage == "" {
				t.Error("user message must never be empty")
			}
			if !errors.Is(appErr, tt.err) {
				t.Error("original error must be wrapped")
			}
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	if got := MapError(nil); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestMapError_PassesThroughAppError(t *testing.T) {
	original := NewAppError("boom", MsgInternalError, "INTERNAL_ERROR", http.StatusInternalServerError, nil)
	if got := MapError(original); got != original {
		t.Error("an AppError must pass through unchanged")
	}
}

func TestMapError_WrappedChain(t *testing.T) {
	base := errors.New("connection refused")
	wrapped := fmt.Errorf("upstream request failed: %w", base)
	appErr := MapError(wrapped)
	if appErr.Code != ErrCodeUpstreamUnavailable {
		t.Fatalf("expected upstream mapping, got %s", appErr.Code)
	}
	if !errors.Is(appErr, base) {
		t.Error("expected chain to reach the base error")
	}
}
