package form

import "fmt"

// Field names a member of Data. The string value is also the JSON key.
type Field string

// Form fields in display order.
const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldAddress1 Field = "address1"
	FieldAddress2 Field = "address2"
	FieldCity     Field = "city"
	FieldState    Field = "state"
	FieldZip      Field = "zip"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldAddress1,
	FieldAddress2,
	FieldCity,
	FieldState,
	FieldZip,
}

// Data is the record collected by the wizard. Absent values are empty
// strings, so the zero value is a complete, serializable record.
type Data struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Address1 string `json:"address1" yaml:"address1"`
	Address2 string `json:"address2" yaml:"address2"`
	City     string `json:"city" yaml:"city"`
	State    string `json:"state" yaml:"state"`
	Zip      string `json:"zip" yaml:"zip"`
}

// Get returns the value of f.
func (d *Data) Get(f Field) string {
	if p := d.ptr(f); p != nil {
		return *p
	}
	return ""
}

// Set assigns value to f.
func (d *Data) Set(f Field, value string) error {
	p := d.ptr(f)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*p = value
	return nil
}

// Ptr exposes the storage of f so input widgets can bind to it directly.
// It returns nil for unknown fields.
func (d *Data) Ptr(f Field) *string {
	return d.ptr(f)
}

// IsZero reports whether every field is empty.
func (d Data) IsZero() bool {
	return d == Data{}
}

func (d *Data) ptr(f Field) *string {
	switch f {
	case FieldName:
		return &d.Name
	case FieldEmail:
		return &d.Email
	case FieldPhone:
		return &d.Phone
	case FieldAddress1:
		return &d.Address1
	case FieldAddress2:
		return &d.Address2
	case FieldCity:
		return &d.City
	case FieldState:
		return &d.State
	case FieldZip:
		return &d.Zip
	}
	return nil
}
