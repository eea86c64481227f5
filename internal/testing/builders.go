package testing

import "github.com/imamik/stepform/internal/form"

// DataBuilder provides a fluent interface for constructing form records.
// Each method returns a new builder (immutable) for chaining.
type DataBuilder struct {
	data form.Data
}

// NewDataBuilder creates a builder holding a record that passes every step.
func NewDataBuilder() *DataBuilder {
	return &DataBuilder{
		data: form.Data{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Address1: "1 Main St",
			Address2: "Apt 4",
			City:     "Springfield",
			State:    "IL",
			Zip:      "62701",
		},
	}
}

// With sets field f to value.
func (b *DataBuilder) With(f form.Field, value string) *DataBuilder {
	newBuilder := b.clone()
	_ = newBuilder.data.Set(f, value)
	return newBuilder
}

// Without empties the given fields.
func (b *DataBuilder) Without(fields ...form.Field) *DataBuilder {
	newBuilder := b.clone()
	for _, f := range fields {
		_ = newBuilder.data.Set(f, "")
	}
	return newBuilder
}

// Only keeps the given fields and empties the rest.
func (b *DataBuilder) Only(fields ...form.Field) *DataBuilder {
	newBuilder := &DataBuilder{}
	for _, f := range fields {
		_ = newBuilder.data.Set(f, b.data.Get(f))
	}
	return newBuilder
}

// Build returns the record.
func (b *DataBuilder) Build() form.Data {
	return b.data
}

func (b *DataBuilder) clone() *DataBuilder {
	return &DataBuilder{data: b.data}
}
