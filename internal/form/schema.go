package form

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule checks a single value. It returns a *FieldError or nil.
type Rule func(f Field, value string) error

// Spec describes one field of the schema.
type Spec struct {
	Field       Field
	Label       string
	Placeholder string
	// Rule is nil for optional fields.
	Rule Rule
}

// Optional reports whether the field accepts any value.
func (s Spec) Optional() bool {
	return s.Rule == nil
}

// emailLocalRegex and emailDomainRegex split the address check so the
// leading-dot and double-dot cases can be rejected without lookaheads.
var (
	emailLocalRegex  = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]$`)
	emailDomainRegex = regexp.MustCompile(`^(?:[A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)
)

var schema = map[Field]Spec{
	FieldName: {
		Field: FieldName, Label: "Name", Placeholder: "Jane Doe",
		Rule: required("Name is required"),
	},
	FieldEmail: {
		Field: FieldEmail, Label: "Email", Placeholder: "jane@example.com",
		Rule: email("Invalid email address"),
	},
	FieldPhone: {
		Field: FieldPhone, Label: "Phone", Placeholder: "+1 555 0100",
		Rule: required("Phone number is required"),
	},
	FieldAddress1: {
		Field: FieldAddress1, Label: "Address Line 1", Placeholder: "1 Main Street",
		Rule: required("Address Line 1 is required"),
	},
	FieldAddress2: {
		Field: FieldAddress2, Label: "Address Line 2", Placeholder: "Apartment, suite (optional)",
	},
	FieldCity: {
		Field: FieldCity, Label: "City", Placeholder: "Springfield",
		Rule: required("City is required"),
	},
	FieldState: {
		Field: FieldState, Label: "State", Placeholder: "IL",
		Rule: required("State is required"),
	},
	FieldZip: {
		Field: FieldZip, Label: "ZIP Code", Placeholder: "62701",
		Rule: required("ZIP / Postal Code is required"),
	},
}

// Lookup returns the Spec for f.
func Lookup(f Field) (Spec, bool) {
	s, ok := schema[f]
	return s, ok
}

// Label returns the display label for f, or the field name if f is unknown.
func Label(f Field) string {
	if s, ok := schema[f]; ok {
		return s.Label
	}
	return string(f)
}

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if strings.HasPrefix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	return emailLocalRegex.MatchString(local) && emailDomainRegex.MatchString(domain)
}

func required(message string) Rule {
	return func(f Field, value string) error {
		if value == "" {
			return &FieldError{Field: f, Message: message, Err: ErrRequired}
		}
		return nil
	}
}

func email(message string) Rule {
	return func(f Field, value string) error {
		if !IsEmail(value) {
			return &FieldError{Field: f, Message: message, Err: ErrInvalidEmail}
		}
		return nil
	}
}

// String implements fmt.Stringer.
func (s Spec) String() string {
	if s.Optional() {
		return fmt.Sprintf("%s (optional)", s.Label)
	}
	return s.Label
}
