// Package validation provides input validation for appkit applications.
//
// It supports struct tag validation (using the validator library) and
// programmatic validation with error collection. Failures are reported as
// INVALID_ARGUMENT errors from the errors package with per-field details.
//
// # Struct Tag Validation
//
//	type CreateUser struct {
//	    Name  string `validate:"required,min=2"`
//	    Email string `validate:"required,email"`
//	}
//	err := validation.Validate(cmd)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name)
//	err := v.Validate()
package validation
