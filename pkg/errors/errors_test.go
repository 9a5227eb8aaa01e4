/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")

	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestNewWithContext(t *testing.T) {
	ctx := map[string]any{
		"resourceGroup": "rg-east",
		"region":        "eastus",
	}

	err := NewWithContext(ErrCodeNotFound, "resource group not found", ctx)

	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["resourceGroup"] != "rg-east" {
		t.Errorf("expected resourceGroup to be rg-east")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
		wantOK   bool
	}{
		{
			name:     "structured error",
			err:      New(ErrCodeCommunication, "connection reset"),
			wantCode: ErrCodeCommunication,
			wantOK:   true,
		},
		{
			name:     "wrapped structured error",
			err:      fmt.Errorf("lookup failed: %w", New(ErrCodeNotFound, "gone")),
			wantCode: ErrCodeNotFound,
			wantOK:   true,
		},
		{
			name:   "plain error is unclassified",
			err:    errors.New("boom"),
			wantOK: false,
		},
		{
			name:   "nil error is unclassified",
			err:    nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := CodeOf(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, code)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "bad descriptor")

	if !IsCode(err, ErrCodeInvalidArgument) {
		t.Errorf("expected IsCode to match INVALID_ARGUMENT")
	}
	if IsCode(err, ErrCodeNotFound) {
		t.Errorf("expected IsCode to reject NOT_FOUND")
	}
	if IsCode(errors.New("plain"), ErrCodeInternal) {
		t.Errorf("expected IsCode to reject unclassified error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}
