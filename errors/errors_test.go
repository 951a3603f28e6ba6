package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppErrorString(t *testing.T) {
	err := New(ErrCodeNotFound, "missing thing", http.StatusNotFound)
	if got := err.Error(); got != "NOT_FOUND: missing thing" {
		t.Errorf("unexpected error string: %q", got)
	}

	wrapped := err.WithCause(stderrors.New("boom"))
	if !strings.Contains(wrapped.Error(), "cause: boom") {
		t.Errorf("expected cause in error string, got %q", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestServiceNotFound(t *testing.T) {
	err := ServiceNotFound("request")
	if err.Code != ErrCodeServiceNotFound {
		t.Errorf("expected SERVICE_NOT_FOUND, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "request") {
		t.Errorf("expected service name in message, got %q", err.Message)
	}
	if err.Details["service"] != "request" {
		t.Errorf("expected service detail, got %v", err.Details)
	}
	if !IsServiceNotFound(err) {
		t.Error("IsServiceNotFound should be true")
	}
	if IsServiceNotFound(stderrors.New("other")) {
		t.Error("IsServiceNotFound should be false for plain errors")
	}
}

func TestHasCode(t *testing.T) {
	err := DecodeFailed(stderrors.New("unexpected end of input"))
	if !HasCode(err, ErrCodeDecodeFailed) {
		t.Error("expected DECODE_FAILED code")
	}
	if HasCode(err, ErrCodeEncodeFailed) {
		t.Error("did not expect ENCODE_FAILED code")
	}
	if HasCode(nil, ErrCodeDecodeFailed) {
		t.Error("nil error has no code")
	}
}

func TestWithDetail(t *testing.T) {
	err := InvalidArgument("delimiter", "must not be empty").WithDetail("value", "")
	if err.Details["argument"] != "delimiter" {
		t.Errorf("expected argument detail, got %v", err.Details)
	}
	if _, ok := err.Details["value"]; !ok {
		t.Error("expected merged detail key")
	}
}
