package form

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError reports a rejected field value.
type FieldError struct {
	Field   Field
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors is an ordered list of field failures.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// First returns the first failing field, which is the one to focus.
func (v ValidationErrors) First() (Field, bool) {
	if len(v) == 0 {
		return "", false
	}
	return v[0].Field, true
}

// For returns the failure recorded for f, if any.
func (v ValidationErrors) For(f Field) (*FieldError, bool) {
	for _, fe := range v {
		if fe.Field == f {
			return fe, true
		}
	}
	return nil, false
}

// Without returns v minus the entry for f.
func (v ValidationErrors) Without(f Field) ValidationErrors {
	var out ValidationErrors
	for _, fe := range v {
		if fe.Field != f {
			out = append(out, fe)
		}
	}
	return out
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, fe := range v {
		errs[i] = fe
	}
	return errs
}

// Validate checks value against the rule of f. Optional fields always pass.
func Validate(f Field, value string) error {
	s, ok := schema[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	if s.Rule == nil {
		return nil
	}
	return s.Rule(f, value)
}

// ValidateFields checks exactly the given fields of d, in order.
// It returns ValidationErrors, or nil when every field passes.
func ValidateFields(d Data, fields ...Field) error {
	var failed ValidationErrors
	for _, f := range fields {
		err := Validate(f, d.Get(f))
		if err == nil {
			continue
		}
		var fe *FieldError
		if !errors.As(err, &fe) {
			return err
		}
		failed = append(failed, fe)
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// ValidateAll checks every field of d.
func ValidateAll(d Data) error {
	return ValidateFields(d, Fields...)
}
