package validation

import (
	"strings"
	"testing"

	"github.com/appkit-go/appkit/errors"
)

type registerInput struct {
	UserName string `validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `validate:"oneof=admin member"`
}

func TestValidateStructOK(t *testing.T) {
	in := registerInput{UserName: "ann", Email: "ann@example.com", Role: "admin"}
	if err := Validate(in); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructFailures(t *testing.T) {
	in := registerInput{UserName: "", Email: "not-an-email", Role: "root"}
	err := Validate(in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"user_name: is required", "email: must be a valid email address", "role: must be one of"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in message, got %q", want, msg)
		}
	}
}

func TestProgrammaticValidator(t *testing.T) {
	v := New()
	v.Required("name", "  ").
		MaxLength("title", strings.Repeat("x", 20), 10).
		OneOf("env", "production", "development", "staging", "production")

	if !v.HasErrors() {
		t.Fatal("expected collected errors")
	}
	if len(v.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %v", v.Errors())
	}
	if err := v.Validate(); err == nil {
		t.Error("expected Validate to surface errors")
	}
}

func TestProgrammaticValidatorClean(t *testing.T) {
	v := New()
	v.Required("name", "ok").
		RequiredUUID("id", "6ba7b810-9dad-11d1-80b4-00c04fd430c8").
		Check(true, "flag", "never added")
	if err := v.Validate(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestRequiredUUID(t *testing.T) {
	v := New()
	v.RequiredUUID("id", "not-a-uuid")
	if !v.HasErrors() {
		t.Error("expected invalid UUID to be rejected")
	}

	v = New()
	v.RequiredUUID("id", "00000000-0000-0000-0000-000000000000")
	if !v.HasErrors() {
		t.Error("expected nil UUID to be rejected")
	}
}
